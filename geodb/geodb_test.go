package geodb

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	geoip2 "github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/suite"
)

type GeoDBTestSuite struct {
	suite.Suite

	tmpDir string
}

func (suite *GeoDBTestSuite) SetupTest() {
	dir, err := ioutil.TempDir("", "geodb_test_")
	if err != nil {
		panic(err)
	}

	suite.tmpDir = dir
}

func (suite *GeoDBTestSuite) TearDownTest() {
	os.RemoveAll(suite.tmpDir)
}

func (suite *GeoDBTestSuite) TestOpenNoFile() {
	_, err := Open(filepath.Join(suite.tmpDir, "absent.mmdb"))

	suite.Error(err)
	suite.True(IsIOFailure(err))
}

func (suite *GeoDBTestSuite) TestOpenBadFile() {
	path := filepath.Join(suite.tmpDir, "broken.mmdb")
	if err := ioutil.WriteFile(path, []byte("definitely not a maxmind database"), 0644); err != nil {
		panic(err)
	}

	_, err := Open(path)

	suite.Error(err)
	suite.True(IsIOFailure(err))
}

func (suite *GeoDBTestSuite) TestOpenEmptyFile() {
	path := filepath.Join(suite.tmpDir, "empty.mmdb")
	if err := ioutil.WriteFile(path, nil, 0644); err != nil {
		panic(err)
	}

	_, err := Open(path)

	suite.True(IsIOFailure(err))
}

func TestGeoDB(t *testing.T) {
	suite.Run(t, &GeoDBTestSuite{})
}

func makeSubdivisions(city *geoip2.City, codes ...string) {
	value := reflect.ValueOf(&city.Subdivisions).Elem()
	value.Set(reflect.MakeSlice(value.Type(), len(codes), len(codes)))

	for i, code := range codes {
		city.Subdivisions[i].IsoCode = code
	}
}

type MostSpecificSubdivisionTestSuite struct {
	suite.Suite
}

func (suite *MostSpecificSubdivisionTestSuite) TestNil() {
	suite.Equal("", MostSpecificSubdivision(nil))
}

func (suite *MostSpecificSubdivisionTestSuite) TestNoSubdivisions() {
	suite.Equal("", MostSpecificSubdivision(&geoip2.City{}))
}

func (suite *MostSpecificSubdivisionTestSuite) TestSingle() {
	city := &geoip2.City{}
	makeSubdivisions(city, "CA")

	suite.Equal("CA", MostSpecificSubdivision(city))
}

func (suite *MostSpecificSubdivisionTestSuite) TestLastWins() {
	city := &geoip2.City{}
	makeSubdivisions(city, "ENG", "WBK")

	suite.Equal("WBK", MostSpecificSubdivision(city))
}

func TestMostSpecificSubdivision(t *testing.T) {
	suite.Run(t, &MostSpecificSubdivisionTestSuite{})
}

func TestIsIOFailure(t *testing.T) {
	suite.Run(t, &IOErrorTestSuite{})
}

type IOErrorTestSuite struct {
	suite.Suite
}

func (suite *IOErrorTestSuite) TestPlainError() {
	suite.False(IsIOFailure(os.ErrNotExist))
}

func (suite *IOErrorTestSuite) TestWrapped() {
	err := newIOError(os.ErrPermission, "cannot open %s", "/x")

	suite.True(IsIOFailure(err))
	suite.Contains(err.Error(), "cannot open /x")
}
