package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/knightsbridge-digital/intake/src/utils/config"
	"github.com/knightsbridge-digital/intake/src/utils/logger"
	"github.com/knightsbridge-digital/intake/src/utils/monitoring"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

var fieldNameRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// FileStore keeps uploaded documents on local disk, one directory per form
// field. Served back under the configured public URL.
type FileStore struct {
	config  *config.Storage
	monitor monitoring.Monitor
	log     *logrus.Entry
}

// SavedFile locates one stored blob
type SavedFile struct {
	Path      string `json:"path"`
	PublicUrl string `json:"public_url"`
	Size      int64  `json:"size"`
}

func NewFileStore(config *config.Storage) (self *FileStore) {
	self = new(FileStore)
	self.config = config
	self.log = logger.NewSublogger("file-store")
	return
}

func (self *FileStore) WithMonitor(monitor monitoring.Monitor) *FileStore {
	self.monitor = monitor
	return self
}

// Save writes one document under {field}/{timestamp}_{random}{ext}
func (self *FileStore) Save(fieldName, originalFilename string, reader io.Reader) (out SavedFile, err error) {
	field := fieldNameRegex.ReplaceAllString(fieldName, "")
	if field == "" {
		field = "unknown"
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), xid.New().String(), ext)
	relative := filepath.Join(field, name)

	err = os.MkdirAll(filepath.Join(self.config.Dir, field), 0o755)
	if err != nil {
		self.onError(err, relative, "Failed to create upload directory")
		return
	}

	file, err := os.Create(filepath.Join(self.config.Dir, relative))
	if err != nil {
		self.onError(err, relative, "Failed to create document file")
		return
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		self.onError(err, relative, "Failed to write document file")
		return
	}

	out = SavedFile{
		Path:      relative,
		PublicUrl: self.PublicUrl(relative),
		Size:      size,
	}
	return
}

// Delete removes one stored blob. Paths pointing outside the storage
// directory are refused.
func (self *FileStore) Delete(path string) (err error) {
	relative := filepath.Clean(path)
	if relative == "." || strings.HasPrefix(relative, "..") || filepath.IsAbs(relative) {
		err = fmt.Errorf("invalid document path: %s", path)
		return
	}

	err = os.Remove(filepath.Join(self.config.Dir, relative))
	if err != nil {
		self.onError(err, relative, "Failed to delete document file")
		return
	}
	return
}

func (self *FileStore) PublicUrl(path string) string {
	return strings.TrimSuffix(self.config.PublicUrl, "/") + "/" + filepath.ToSlash(path)
}

func (self *FileStore) onError(err error, path, message string) {
	self.log.WithError(err).WithField("path", path).Error(message)
	if self.monitor != nil {
		self.monitor.GetReport().Checkout.Errors.FileStoreErrors.Inc()
	}
}
