package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knightsbridge-digital/intake/src/utils/config"

	"github.com/stretchr/testify/suite"
)

func TestFileStoreSuite(t *testing.T) {
	suite.Run(t, new(FileStoreSuite))
}

type FileStoreSuite struct {
	suite.Suite

	store *FileStore
	dir   string
}

func (self *FileStoreSuite) SetupTest() {
	self.dir = self.T().TempDir()
	self.store = NewFileStore(&config.Storage{
		Dir:       self.dir,
		PublicUrl: "http://localhost:4100/files",
	})
}

func (self *FileStoreSuite) TestSave() {
	saved, err := self.store.Save("kycProofOfIdentity", "passport.pdf", strings.NewReader("pdf bytes"))
	self.NoError(err)
	self.Equal(int64(9), saved.Size)
	self.True(strings.HasPrefix(saved.Path, "kycProofOfIdentity"+string(filepath.Separator)))
	self.True(strings.HasSuffix(saved.Path, ".pdf"))
	self.Equal("http://localhost:4100/files/"+filepath.ToSlash(saved.Path), saved.PublicUrl)

	content, err := os.ReadFile(filepath.Join(self.dir, saved.Path))
	self.NoError(err)
	self.Equal("pdf bytes", string(content))
}

func (self *FileStoreSuite) TestSaveSanitizesFieldName() {
	saved, err := self.store.Save("../../../etc", "x.txt", strings.NewReader("x"))
	self.NoError(err)
	self.True(strings.HasPrefix(saved.Path, "etc"+string(filepath.Separator)))
}

func (self *FileStoreSuite) TestSaveWithoutExtension() {
	saved, err := self.store.Save("businessPlanGuide", "README", strings.NewReader("x"))
	self.NoError(err)
	self.False(strings.Contains(filepath.Base(saved.Path), "."))
}

func (self *FileStoreSuite) TestDelete() {
	saved, err := self.store.Save("letterheadSample", "logo.png", strings.NewReader("png"))
	self.NoError(err)

	self.NoError(self.store.Delete(saved.Path))
	_, err = os.Stat(filepath.Join(self.dir, saved.Path))
	self.True(os.IsNotExist(err))
}

func (self *FileStoreSuite) TestDeleteRefusesTraversal() {
	self.Error(self.store.Delete("../outside.txt"))
	self.Error(self.store.Delete("/etc/passwd"))
	self.Error(self.store.Delete("."))
}
