package checkout

import (
	"context"

	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/model"
	"github.com/knightsbridge-digital/intake/src/utils/monitoring"
	"github.com/knightsbridge-digital/intake/src/utils/task"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Store persists submissions and everything that hangs off them.
// The main row and the detail rows go in one transaction, uploaded document
// metadata is filled in afterwards by the worker pool since losing it doesn't
// invalidate the submission.
type Store struct {
	*task.Task

	db      *gorm.DB
	monitor monitoring.Monitor
}

func NewStore(config *config.Config) (self *Store) {
	self = new(Store)

	self.Task = task.NewTask(config, "store").
		WithWorkerPool(config.Checkout.StoreNumWorkers)

	return
}

func (self *Store) WithDB(db *gorm.DB) *Store {
	self.db = db
	return self
}

func (self *Store) WithMonitor(monitor monitoring.Monitor) *Store {
	self.monitor = monitor
	return self
}

// SaveSubmission inserts the main row and all detail rows atomically
func (self *Store) SaveSubmission(ctx context.Context, records *Records) (err error) {
	err = self.db.WithContext(ctx).Transaction(func(tx *gorm.DB) (err error) {
		err = tx.Create(&records.Submission).Error
		if err != nil {
			return
		}

		if len(records.TokenFeatures) > 0 {
			err = tx.Create(&records.TokenFeatures).Error
			if err != nil {
				return
			}
		}
		if records.Letterhead != nil {
			err = tx.Create(records.Letterhead).Error
			if err != nil {
				return
			}
		}
		if records.RaiseDocument != nil {
			err = tx.Create(records.RaiseDocument).Error
			if err != nil {
				return
			}
		}
		if len(records.RaiseDocumentRegions) > 0 {
			err = tx.Create(&records.RaiseDocumentRegions).Error
			if err != nil {
				return
			}
		}
		if records.Whitepaper != nil {
			err = tx.Create(records.Whitepaper).Error
			if err != nil {
				return
			}
		}
		if records.WebsitePlan != nil {
			err = tx.Create(records.WebsitePlan).Error
			if err != nil {
				return
			}
		}
		if len(records.ExchangeListings) > 0 {
			err = tx.Create(&records.ExchangeListings).Error
			if err != nil {
				return
			}
		}
		if records.ExchangeListingsPreferences != nil {
			err = tx.Create(records.ExchangeListingsPreferences).Error
			if err != nil {
				return
			}
		}
		if len(records.LegalDocuments) > 0 {
			err = tx.Create(&records.LegalDocuments).Error
			if err != nil {
				return
			}
		}
		if records.LegalDocumentPreferences != nil {
			err = tx.Create(records.LegalDocumentPreferences).Error
			if err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		self.Log.WithError(err).WithField("id", records.Submission.Id).Error("Failed to save submission")
		self.monitor.GetReport().Checkout.Errors.DbSubmissionInsert.Inc()
		return
	}

	self.monitor.GetReport().Checkout.State.SubmissionsSaved.Inc()
	return
}

// SaveUploadedDocuments schedules metadata inserts on the worker pool.
// Failures get logged and counted, they don't fail the submission.
func (self *Store) SaveUploadedDocuments(documents []model.UploadedDocument) {
	for i := range documents {
		document := documents[i]
		self.Workers.Submit(func() {
			err := self.db.Create(&document).Error
			if err != nil {
				self.Log.WithError(err).
					WithField("submission_id", document.SubmissionId).
					WithField("field_name", document.FieldName).
					Error("Failed to save uploaded document metadata")
				self.monitor.GetReport().Checkout.Errors.DbUploadedDocumentInsert.Inc()
				return
			}
			self.monitor.GetReport().Checkout.State.DocumentsUploaded.Inc()
		})
	}
}

func (self *Store) SaveContactMessage(ctx context.Context, message *model.ContactMessage) (err error) {
	err = self.db.WithContext(ctx).Create(message).Error
	if err != nil {
		self.Log.WithError(err).Error("Failed to save contact message")
		self.monitor.GetReport().Checkout.Errors.DbContactMessageInsert.Inc()
		return
	}
	self.monitor.GetReport().Checkout.State.ContactMessagesSaved.Inc()
	return
}

// SubmissionSummary is one row of the admin listing, the main record plus
// the per-section selections flattened into arrays
type SubmissionSummary struct {
	model.Submission

	Features       []string `json:"features"`
	Regions        []string `json:"regions"`
	Exchanges      []string `json:"exchanges"`
	LegalDocuments []string `json:"legal_documents"`

	Letterhead  *model.LetterheadService `json:"letterhead,omitempty"`
	Whitepaper  *model.Whitepaper        `json:"whitepaper,omitempty"`
	WebsitePlan *model.WebsitePlan       `json:"website_plan,omitempty"`

	Documents []model.UploadedDocument `json:"documents"`
}

type submissionIdValues struct {
	SubmissionId string         `json:"submission_id"`
	Values       pq.StringArray `gorm:"type:text[]" json:"values"`
}

func (self *Store) aggregate(ctx context.Context, table, column string) (out map[string][]string, err error) {
	var rows []submissionIdValues
	err = self.db.WithContext(ctx).
		Raw("SELECT submission_id, array_agg("+column+" ORDER BY id) AS values FROM "+table+" GROUP BY submission_id").
		Scan(&rows).
		Error
	if err != nil {
		return
	}

	out = make(map[string][]string, len(rows))
	for _, row := range rows {
		out[row.SubmissionId] = row.Values
	}
	return
}

// ListSubmissions loads every submission, newest first, with its related data
func (self *Store) ListSubmissions(ctx context.Context) (out []SubmissionSummary, err error) {
	var submissions []model.Submission
	err = self.db.WithContext(ctx).
		Table(model.TableFormSubmissions).
		Order("created_at DESC").
		Find(&submissions).
		Error
	if err != nil {
		return
	}

	features, err := self.aggregate(ctx, model.TableTokenFeatures, "feature_name")
	if err != nil {
		return
	}
	regions, err := self.aggregate(ctx, model.TableRaiseDocumentRegions, "region")
	if err != nil {
		return
	}
	exchanges, err := self.aggregate(ctx, model.TableExchangeListings, "exchange_name")
	if err != nil {
		return
	}
	legal, err := self.aggregate(ctx, model.TableLegalDocuments, "document_type")
	if err != nil {
		return
	}

	letterheads, err := loadBySubmission(ctx, self.db, model.TableLetterheadServices,
		func(row *model.LetterheadService) string { return row.SubmissionId })
	if err != nil {
		return
	}
	whitepapers, err := loadBySubmission(ctx, self.db, model.TableWhitepapers,
		func(row *model.Whitepaper) string { return row.SubmissionId })
	if err != nil {
		return
	}
	websitePlans, err := loadBySubmission(ctx, self.db, model.TableWebsitePlans,
		func(row *model.WebsitePlan) string { return row.SubmissionId })
	if err != nil {
		return
	}

	var documents []model.UploadedDocument
	err = self.db.WithContext(ctx).
		Table(model.TableUploadedDocuments).
		Order("id ASC").
		Find(&documents).
		Error
	if err != nil {
		return
	}
	documentsById := make(map[string][]model.UploadedDocument, len(documents))
	for _, document := range documents {
		documentsById[document.SubmissionId] = append(documentsById[document.SubmissionId], document)
	}

	out = make([]SubmissionSummary, 0, len(submissions))
	for _, submission := range submissions {
		out = append(out, SubmissionSummary{
			Submission:     submission,
			Features:       features[submission.Id],
			Regions:        regions[submission.Id],
			Exchanges:      exchanges[submission.Id],
			LegalDocuments: legal[submission.Id],
			Letterhead:     letterheads[submission.Id],
			Whitepaper:     whitepapers[submission.Id],
			WebsitePlan:    websitePlans[submission.Id],
			Documents:      documentsById[submission.Id],
		})
	}
	return
}

// One row per submission tables (letterhead, whitepaper, website plan)
func loadBySubmission[T any](ctx context.Context, db *gorm.DB, table string, key func(*T) string) (out map[string]*T, err error) {
	var rows []T
	err = db.WithContext(ctx).Table(table).Find(&rows).Error
	if err != nil {
		return
	}
	out = make(map[string]*T, len(rows))
	for i := range rows {
		out[key(&rows[i])] = &rows[i]
	}
	return
}

func (self *Store) GetAdminCredentials(ctx context.Context) (out *model.AdminCredentials, err error) {
	out = new(model.AdminCredentials)
	err = self.db.WithContext(ctx).
		Table(model.TableAdminCredentials).
		Order("id ASC").
		First(out).
		Error
	return
}

func (self *Store) UpdateAdminCredentials(ctx context.Context, email, password string) (err error) {
	return self.db.WithContext(ctx).
		Table(model.TableAdminCredentials).
		Where("id = (SELECT MIN(id) FROM " + model.TableAdminCredentials + ")").
		Updates(map[string]interface{}{"email": email, "password": password, "updated_at": gorm.Expr("NOW()")}).
		Error
}
