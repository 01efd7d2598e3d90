package media_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/media"
)

type StoreTestSuite struct {
	suite.Suite
	dir   string
	store *media.Store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()

	store, err := media.NewStore(configs.Media{Dir: suite.dir, URLPrefix: "/media", MaxSide: 8}, zap.NewNop())
	suite.Require().NoError(err)

	suite.store = store
}

func pngDataURI(t *testing.T, width, height int) string {
	t.Helper()

	var buf bytes.Buffer
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 120, B: 40, A: 255})

	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatal(err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (suite *StoreTestSuite) TestSave_WritesScaledFile() {
	ref, err := suite.store.Save(context.Background(), pngDataURI(suite.T(), 32, 16))
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(ref, "/media/"))
	suite.True(strings.HasSuffix(ref, ".png"))

	img, err := imaging.Open(filepath.Join(suite.dir, strings.TrimPrefix(ref, "/media/")))
	suite.Require().NoError(err)
	suite.Equal(8, img.Bounds().Dx())
	suite.Equal(4, img.Bounds().Dy())
}

func (suite *StoreTestSuite) TestSave_KeepsSmallImages() {
	ref, err := suite.store.Save(context.Background(), pngDataURI(suite.T(), 3, 2))
	suite.Require().NoError(err)

	img, err := imaging.Open(filepath.Join(suite.dir, strings.TrimPrefix(ref, "/media/")))
	suite.Require().NoError(err)
	suite.Equal(3, img.Bounds().Dx())
}

func (suite *StoreTestSuite) TestSave_RejectsBadInput() {
	tests := map[string]string{
		"not a data uri": "https://example.com/cake.png",
		"not base64":     "data:image/png,rawbytes",
		"unsupported":    "data:image/svg+xml;base64,PHN2Zz4=",
		"bad payload":    "data:image/png;base64,!!!",
		"not an image":   "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hello")),
	}

	for name, input := range tests {
		suite.Run(name, func() {
			_, err := suite.store.Save(context.Background(), input)
			suite.Require().ErrorIs(err, media.ErrInvalidImage)
		})
	}

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *StoreTestSuite) TestDelete() {
	ref, err := suite.store.Save(context.Background(), pngDataURI(suite.T(), 2, 2))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.Delete(context.Background(), ref))
	suite.Require().NoError(suite.store.Delete(context.Background(), ref))
	suite.Require().NoError(suite.store.Delete(context.Background(), "/elsewhere/x.png"))
	suite.Require().NoError(suite.store.Delete(context.Background(), "/media/../config.toml"))

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Empty(entries)
}
