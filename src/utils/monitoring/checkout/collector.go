package monitor_checkout

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	StartTimestamp                   *prometheus.Desc
	UpForSeconds                     *prometheus.Desc
	SubmissionsSaved                 *prometheus.Desc
	ValidationRejected               *prometheus.Desc
	QuotesComputed                   *prometheus.Desc
	DocumentsUploaded                *prometheus.Desc
	ContactMessagesSaved             *prometheus.Desc
	AverageSubmissionsSavedPerMinute *prometheus.Desc
	PaymentsCreated                  *prometheus.Desc
	StatusUpdates                    *prometheus.Desc
	SubmissionsExpired               *prometheus.Desc

	DbSubmissionInsert       *prometheus.Desc
	DbUploadedDocumentInsert *prometheus.Desc
	DbContactMessageInsert   *prometheus.Desc
	FileStoreErrors          *prometheus.Desc
	CardProviderErrors       *prometheus.Desc
	CryptoProviderErrors     *prometheus.Desc
	DbStatusUpdate           *prometheus.Desc
	DbExpirySweep            *prometheus.Desc
	InvalidTransition        *prometheus.Desc
}

func NewCollector() *Collector {
	labels := prometheus.Labels{
		"app": "intake",
	}

	return &Collector{
		StartTimestamp:                   prometheus.NewDesc("start_timestamp", "", nil, labels),
		UpForSeconds:                     prometheus.NewDesc("up_for_seconds", "", nil, labels),
		SubmissionsSaved:                 prometheus.NewDesc("submissions_saved", "", nil, labels),
		ValidationRejected:               prometheus.NewDesc("validation_rejected", "", nil, labels),
		QuotesComputed:                   prometheus.NewDesc("quotes_computed", "", nil, labels),
		DocumentsUploaded:                prometheus.NewDesc("documents_uploaded", "", nil, labels),
		ContactMessagesSaved:             prometheus.NewDesc("contact_messages_saved", "", nil, labels),
		AverageSubmissionsSavedPerMinute: prometheus.NewDesc("average_submissions_saved_per_minute", "", nil, labels),
		PaymentsCreated:                  prometheus.NewDesc("payments_created", "", nil, labels),
		StatusUpdates:                    prometheus.NewDesc("status_updates", "", nil, labels),
		SubmissionsExpired:               prometheus.NewDesc("submissions_expired", "", nil, labels),

		// Errors
		DbSubmissionInsert:       prometheus.NewDesc("error_db_submission_insert", "", nil, labels),
		DbUploadedDocumentInsert: prometheus.NewDesc("error_db_uploaded_document_insert", "", nil, labels),
		DbContactMessageInsert:   prometheus.NewDesc("error_db_contact_message_insert", "", nil, labels),
		FileStoreErrors:          prometheus.NewDesc("error_file_store", "", nil, labels),
		CardProviderErrors:       prometheus.NewDesc("error_card_provider", "", nil, labels),
		CryptoProviderErrors:     prometheus.NewDesc("error_crypto_provider", "", nil, labels),
		DbStatusUpdate:           prometheus.NewDesc("error_db_status_update", "", nil, labels),
		DbExpirySweep:            prometheus.NewDesc("error_db_expiry_sweep", "", nil, labels),
		InvalidTransition:        prometheus.NewDesc("error_invalid_transition", "", nil, labels),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- self.StartTimestamp
	ch <- self.UpForSeconds
	ch <- self.SubmissionsSaved
	ch <- self.ValidationRejected
	ch <- self.QuotesComputed
	ch <- self.DocumentsUploaded
	ch <- self.ContactMessagesSaved
	ch <- self.AverageSubmissionsSavedPerMinute
	ch <- self.PaymentsCreated
	ch <- self.StatusUpdates
	ch <- self.SubmissionsExpired
	ch <- self.DbSubmissionInsert
	ch <- self.DbUploadedDocumentInsert
	ch <- self.DbContactMessageInsert
	ch <- self.FileStoreErrors
	ch <- self.CardProviderErrors
	ch <- self.CryptoProviderErrors
	ch <- self.DbStatusUpdate
	ch <- self.DbExpirySweep
	ch <- self.InvalidTransition
}

func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(self.StartTimestamp, prometheus.GaugeValue, float64(self.monitor.Report.Run.State.StartTimestamp.Load()))
	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(self.monitor.Report.Run.State.UpForSeconds.Load()))
	ch <- prometheus.MustNewConstMetric(self.SubmissionsSaved, prometheus.CounterValue, float64(self.monitor.Report.Checkout.State.SubmissionsSaved.Load()))
	ch <- prometheus.MustNewConstMetric(self.ValidationRejected, prometheus.CounterValue, float64(self.monitor.Report.Checkout.State.ValidationRejected.Load()))
	ch <- prometheus.MustNewConstMetric(self.QuotesComputed, prometheus.CounterValue, float64(self.monitor.Report.Checkout.State.QuotesComputed.Load()))
	ch <- prometheus.MustNewConstMetric(self.DocumentsUploaded, prometheus.CounterValue, float64(self.monitor.Report.Checkout.State.DocumentsUploaded.Load()))
	ch <- prometheus.MustNewConstMetric(self.ContactMessagesSaved, prometheus.CounterValue, float64(self.monitor.Report.Checkout.State.ContactMessagesSaved.Load()))
	ch <- prometheus.MustNewConstMetric(self.AverageSubmissionsSavedPerMinute, prometheus.GaugeValue, self.monitor.Report.Checkout.State.AverageSubmissionsSavedPerMinute.Load())
	ch <- prometheus.MustNewConstMetric(self.PaymentsCreated, prometheus.CounterValue, float64(self.monitor.Report.Payment.State.PaymentsCreated.Load()))
	ch <- prometheus.MustNewConstMetric(self.StatusUpdates, prometheus.CounterValue, float64(self.monitor.Report.Payment.State.StatusUpdates.Load()))
	ch <- prometheus.MustNewConstMetric(self.SubmissionsExpired, prometheus.CounterValue, float64(self.monitor.Report.Payment.State.SubmissionsExpired.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbSubmissionInsert, prometheus.CounterValue, float64(self.monitor.Report.Checkout.Errors.DbSubmissionInsert.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbUploadedDocumentInsert, prometheus.CounterValue, float64(self.monitor.Report.Checkout.Errors.DbUploadedDocumentInsert.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbContactMessageInsert, prometheus.CounterValue, float64(self.monitor.Report.Checkout.Errors.DbContactMessageInsert.Load()))
	ch <- prometheus.MustNewConstMetric(self.FileStoreErrors, prometheus.CounterValue, float64(self.monitor.Report.Checkout.Errors.FileStoreErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.CardProviderErrors, prometheus.CounterValue, float64(self.monitor.Report.Payment.Errors.CardProvider.Load()))
	ch <- prometheus.MustNewConstMetric(self.CryptoProviderErrors, prometheus.CounterValue, float64(self.monitor.Report.Payment.Errors.CryptoProvider.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbStatusUpdate, prometheus.CounterValue, float64(self.monitor.Report.Payment.Errors.DbStatusUpdate.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbExpirySweep, prometheus.CounterValue, float64(self.monitor.Report.Payment.Errors.DbExpirySweep.Load()))
	ch <- prometheus.MustNewConstMetric(self.InvalidTransition, prometheus.CounterValue, float64(self.monitor.Report.Payment.Errors.InvalidTransition.Load()))
}
