package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/obedfeni/dailytrivia/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	path    string
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "player_data.json")
	s.storage = New(s.path)
	s.ctx = context.Background()
}

func (s *StorageSuite) sample() *model.Snapshot {
	snap := model.NewSnapshot()
	snap.Visitors = 3
	rec := model.NewPlayerRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rec.Score = 20
	rec.Streak = 2
	rec.LastPlayed = "2024-01-02"
	rec.TodayCount = 1
	rec.CategoryScores = map[string]int{"Geography": 20}
	snap.Players["alice"] = rec
	return snap
}

func (s *StorageSuite) TestLoadMissingFile() {
	_, err := s.storage.Load(s.ctx)
	s.ErrorIs(err, model.ErrSnapshotNotFound)
}

func (s *StorageSuite) TestSaveAndLoadRoundTrip() {
	s.Require().NoError(s.storage.Save(s.ctx, s.sample()))

	loaded, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, loaded.Visitors)
	rec := loaded.Players["alice"]
	s.Require().NotNil(rec)
	s.Equal(20, rec.Score)
	s.Equal(2, rec.Streak)
	s.Equal(model.GameDate("2024-01-02"), rec.LastPlayed)
	s.Equal(1, rec.TodayCount)
	s.Equal(map[string]int{"Geography": 20}, rec.CategoryScores)
}

func (s *StorageSuite) TestSaveOverwritesWholeDocument() {
	s.Require().NoError(s.storage.Save(s.ctx, s.sample()))

	empty := model.NewSnapshot()
	s.Require().NoError(s.storage.Save(s.ctx, empty))

	loaded, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.Players)
	s.Equal(0, loaded.Visitors)
}

func (s *StorageSuite) TestSaveLeavesNoTempFile() {
	s.Require().NoError(s.storage.Save(s.ctx, s.sample()))

	_, err := os.Stat(s.path + ".tmp")
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *StorageSuite) TestLoadCorruptFile() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o644))

	_, err := s.storage.Load(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrSnapshotNotFound)
}

func (s *StorageSuite) TestLoadRepairsNilPlayersMap() {
	s.Require().NoError(os.WriteFile(s.path, []byte(`{"visitors": 5}`), 0o644))

	loaded, err := s.storage.Load(s.ctx)
	s.Require().NoError(err)
	s.NotNil(loaded.Players)
	s.Equal(5, loaded.Visitors)
}

func (s *StorageSuite) TestFileIsHumanReadable() {
	s.Require().NoError(s.storage.Save(s.ctx, s.sample()))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), "\n    \"players\"")
}
