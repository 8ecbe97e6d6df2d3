package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/knightsbridge-digital/intake/src/checkout"
	"github.com/knightsbridge-digital/intake/src/storage"
	"github.com/knightsbridge-digital/intake/src/utils/config"
	monitor_checkout "github.com/knightsbridge-digital/intake/src/utils/monitoring/checkout"

	"github.com/knightsbridge-digital/intake/src/server/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

type ServerSuite struct {
	suite.Suite

	server *Server
	router *gin.Engine
}

func (self *ServerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	conf := config.Default()
	conf.Storage.Dir = self.T().TempDir()

	monitor := monitor_checkout.NewMonitor().
		WithMaxHistorySize(30)

	self.server = NewServer(conf).
		WithMonitor(monitor).
		WithFileStore(storage.NewFileStore(&conf.Storage).WithMonitor(monitor))

	self.router = gin.New()
	self.router.POST("/v1/quote", self.server.onGetQuote)
	self.router.POST("/v1/payments", self.server.onCreatePayment)
	self.router.POST("/v1/payments/status", self.server.onUpdatePaymentStatus)
	self.router.POST("/v1/uploads/:field", self.server.onUploadDocument)
	self.router.DELETE("/v1/uploads", self.server.onDeleteDocument)
	self.router.GET("/v1/health", monitor.OnGetHealth)
	self.router.GET("/v1/state", monitor.OnGetState)
}

func (self *ServerSuite) postJson(path string, body interface{}) *httptest.ResponseRecorder {
	encoded, err := json.Marshal(body)
	self.Require().NoError(err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	return recorder
}

func (self *ServerSuite) TestQuote() {
	recorder := self.postJson("/v1/quote", gin.H{
		"type": "Knightsbridge",
		"form": gin.H{
			"tokenFeatures": []string{"pausable"},
		},
	})
	self.Equal(http.StatusOK, recorder.Code)

	var quote checkout.Quote
	self.NoError(json.Unmarshal(recorder.Body.Bytes(), &quote))
	self.Equal(int64(100+75+75), quote.Total)
	self.Len(quote.Items, 3)
}

func (self *ServerSuite) TestQuoteRejectsBadJson() {
	request := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader([]byte("{")))
	recorder := httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusBadRequest, recorder.Code)
	self.Contains(recorder.Body.String(), "error")
}

func (self *ServerSuite) TestCreatePaymentRejectsUnknownMethod() {
	recorder := self.postJson("/v1/payments", gin.H{
		"submissionId": "sub-1",
		"method":       "barter",
	})
	self.Equal(http.StatusBadRequest, recorder.Code)
}

func (self *ServerSuite) TestCreatePaymentRejectsUnknownCurrency() {
	recorder := self.postJson("/v1/payments", gin.H{
		"submissionId": "sub-1",
		"method":       "crypto",
		"payCurrency":  "DOGE",
	})
	self.Equal(http.StatusBadRequest, recorder.Code)
}

func (self *ServerSuite) TestStatusUpdateRejectsUnknownStatus() {
	recorder := self.postJson("/v1/payments/status", gin.H{
		"submissionId": "sub-1",
		"status":       "paid",
	})
	self.Equal(http.StatusBadRequest, recorder.Code)
}

func (self *ServerSuite) TestUploadAndDelete() {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "passport.pdf")
	self.Require().NoError(err)
	_, err = part.Write([]byte("pdf bytes"))
	self.Require().NoError(err)
	self.Require().NoError(writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/v1/uploads/kycProofOfIdentity", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusCreated, recorder.Code)

	var uploaded response.Upload
	self.NoError(json.Unmarshal(recorder.Body.Bytes(), &uploaded))
	self.Equal("kycProofOfIdentity", uploaded.FieldName)
	self.Equal("passport.pdf", uploaded.OriginalFilename)
	self.Equal(int64(9), uploaded.FileSize)
	self.NotEmpty(uploaded.FilePath)

	_, err = os.Stat(filepath.Join(self.server.Config.Storage.Dir, uploaded.FilePath))
	self.NoError(err)

	request = httptest.NewRequest(http.MethodDelete, "/v1/uploads?path="+uploaded.FilePath, nil)
	recorder = httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusOK, recorder.Code)

	_, err = os.Stat(filepath.Join(self.server.Config.Storage.Dir, uploaded.FilePath))
	self.True(os.IsNotExist(err))
}

func (self *ServerSuite) TestUploadWithoutFile() {
	request := httptest.NewRequest(http.MethodPost, "/v1/uploads/letterheadSample", nil)
	recorder := httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusBadRequest, recorder.Code)
}

func (self *ServerSuite) TestDeleteRefusesTraversal() {
	request := httptest.NewRequest(http.MethodDelete, "/v1/uploads?path=../../etc/passwd", nil)
	recorder := httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusBadRequest, recorder.Code)
}

func (self *ServerSuite) TestHealthAndState() {
	request := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	recorder := httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusOK, recorder.Code)

	request = httptest.NewRequest(http.MethodGet, "/v1/state", nil)
	recorder = httptest.NewRecorder()
	self.router.ServeHTTP(recorder, request)
	self.Equal(http.StatusOK, recorder.Code)
	self.Contains(recorder.Body.String(), "checkout")
}
