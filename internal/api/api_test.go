package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/obedfeni/dailytrivia/internal/api"
	"github.com/obedfeni/dailytrivia/internal/factory"
	"github.com/obedfeni/dailytrivia/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:      testutil.NopLogger(),
		GameService: s.app.GameService,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

func (s *APISuite) get(path string) *http.Response {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	return resp
}

func (s *APISuite) post(path string, body any) *http.Response {
	data, err := json.Marshal(body)
	s.Require().NoError(err)
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(data))
	s.Require().NoError(err)
	return resp
}

func (s *APISuite) decode(resp *http.Response, out any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *APISuite) errorCode(resp *http.Response) string {
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	s.decode(resp, &body)
	return body.Error.Code
}

func (s *APISuite) openSession(username string) {
	resp := s.post("/api/v1/sessions", map[string]string{"username": username})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func (s *APISuite) submit(username, category, questionID, choice string) *http.Response {
	return s.post(fmt.Sprintf("/api/v1/players/%s/answers", username), map[string]string{
		"category":    category,
		"question_id": questionID,
		"choice":      choice,
	})
}

func (s *APISuite) TestHealth() {
	resp := s.get("/api/v1/health")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]string
	s.decode(resp, &body)
	s.Equal("ok", body["status"])
}

func (s *APISuite) TestOpenSession() {
	resp := s.post("/api/v1/sessions", map[string]string{"username": "alice"})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body struct {
		SessionID string `json:"session_id"`
		Player    struct {
			Username string `json:"username"`
			Score    int    `json:"score"`
		} `json:"player"`
		Remaining int `json:"remaining"`
	}
	s.decode(resp, &body)

	s.NotEmpty(body.SessionID)
	s.Equal("alice", body.Player.Username)
	s.Equal(0, body.Player.Score)
	s.Equal(3, body.Remaining)
}

func (s *APISuite) TestOpenSessionRequiresUsername() {
	resp := s.post("/api/v1/sessions", map[string]string{})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(resp))
}

func (s *APISuite) TestGetPlayer() {
	s.openSession("alice")

	resp := s.get("/api/v1/players/alice")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Username   string `json:"username"`
		TodayCount int    `json:"today_count"`
	}
	s.decode(resp, &body)
	s.Equal("alice", body.Username)
	s.Equal(0, body.TodayCount)
}

func (s *APISuite) TestGetUnknownPlayer() {
	resp := s.get("/api/v1/players/nobody")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("PLAYER_NOT_FOUND", s.errorCode(resp))
}

func (s *APISuite) TestCategories() {
	resp := s.get("/api/v1/categories")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Categories []string `json:"categories"`
	}
	s.decode(resp, &body)
	s.Contains(body.Categories, "Geography")
	s.Contains(body.Categories, "Puzzle Words")
}

func (s *APISuite) TestDrawQuestionNeverExposesAnswer() {
	resp := s.get("/api/v1/questions?category=Geography")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.decode(resp, &body)
	s.NotEmpty(body["id"])
	s.NotEmpty(body["prompt"])
	s.NotContains(body, "answer")
}

func (s *APISuite) TestDrawQuestionRequiresCategory() {
	resp := s.get("/api/v1/questions")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *APISuite) TestDrawUnknownCategory() {
	resp := s.get("/api/v1/questions?category=Sports")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("CATEGORY_NOT_FOUND", s.errorCode(resp))
}

func (s *APISuite) TestSubmitCorrectAnswer() {
	s.openSession("alice")

	// Free-text matching ignores case and surrounding whitespace.
	resp := s.submit("alice", "Geography", "geography-1", " paris ")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Correct       bool   `json:"correct"`
		CorrectAnswer string `json:"correct_answer"`
		NewScore      int    `json:"new_score"`
		NewStreak     int    `json:"new_streak"`
		Remaining     int    `json:"remaining"`
	}
	s.decode(resp, &body)
	s.True(body.Correct)
	s.Empty(body.CorrectAnswer)
	s.Equal(10, body.NewScore)
	s.Equal(1, body.NewStreak)
	s.Equal(2, body.Remaining)
}

func (s *APISuite) TestSubmitWrongAnswerRevealsCorrectOne() {
	s.openSession("alice")

	resp := s.submit("alice", "Geography", "geography-1", "London")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Correct       bool   `json:"correct"`
		CorrectAnswer string `json:"correct_answer"`
		NewScore      int    `json:"new_score"`
	}
	s.decode(resp, &body)
	s.False(body.Correct)
	s.Equal("Paris", body.CorrectAnswer)
	s.Equal(0, body.NewScore)
}

func (s *APISuite) TestSubmitUnknownQuestion() {
	s.openSession("alice")

	resp := s.submit("alice", "Geography", "geography-99", "Paris")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("QUESTION_NOT_FOUND", s.errorCode(resp))
}

func (s *APISuite) TestSubmitMissingFields() {
	s.openSession("alice")

	resp := s.post("/api/v1/players/alice/answers", map[string]string{"choice": "Paris"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(resp))
}

func (s *APISuite) TestDailyLimit() {
	s.openSession("alice")

	for i := 0; i < 3; i++ {
		resp := s.submit("alice", "Geography", "geography-1", "Paris")
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp := s.submit("alice", "Geography", "geography-1", "Paris")
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("DAILY_LIMIT_REACHED", s.errorCode(resp))
}

func (s *APISuite) TestLeaderboard() {
	s.openSession("alice")
	s.openSession("bob")
	resp := s.submit("bob", "Geography", "geography-1", "Paris")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get("/api/v1/leaderboard?limit=1")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Entries []struct {
			Rank     int    `json:"rank"`
			Username string `json:"username"`
			Score    int    `json:"score"`
		} `json:"entries"`
	}
	s.decode(resp, &body)
	s.Require().Len(body.Entries, 1)
	s.Equal(1, body.Entries[0].Rank)
	s.Equal("bob", body.Entries[0].Username)
	s.Equal(10, body.Entries[0].Score)
}

func (s *APISuite) TestLeaderboardRejectsBadLimit() {
	resp := s.get("/api/v1/leaderboard?limit=-1")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *APISuite) TestVisitors() {
	s.openSession("alice")
	s.openSession("alice")
	s.openSession("bob")

	resp := s.get("/api/v1/visitors")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Visitors int `json:"visitors"`
	}
	s.decode(resp, &body)
	s.Equal(2, body.Visitors)
}

func (s *APISuite) TestShare() {
	s.openSession("alice")
	resp := s.submit("alice", "Geography", "geography-1", "Paris")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get("/api/v1/players/alice/share")
	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Text string `json:"text"`
	}
	s.decode(resp, &body)
	s.Contains(body.Text, "Score: 10 pts")
	s.Contains(body.Text, "Streak: 1 days")
}

func (s *APISuite) TestShareUnknownPlayer() {
	resp := s.get("/api/v1/players/nobody/share")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("PLAYER_NOT_FOUND", s.errorCode(resp))
}
