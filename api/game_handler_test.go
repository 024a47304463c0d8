package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opencourt/court-booking-backend/api"
	mock_api "github.com/opencourt/court-booking-backend/api/mocks"
	bk "github.com/opencourt/court-booking-backend/booking"
	"github.com/opencourt/court-booking-backend/game"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupGameRouter(t *testing.T, userID string) (*gin.Engine, *gomock.Controller, *mock_api.MockGameService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockGameService(ctrl)
	handler := api.NewGameHandler(mockService)
	handler.Register(router.Group("/api/game"), setUserInContext(userID))

	return router, ctrl, mockService
}

func TestCreateGame(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	payload := map[string]any{
		"sport":         "badminton",
		"venueId":       "venue1",
		"courtNumber":   3,
		"gameStartTime": start.Format(time.RFC3339),
		"gameEndTime":   end.Format(time.RFC3339),
		"visibility":    "public",
		"maxPlayers":    4,
		"amount":        400,
	}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		created := game.Game{ID: "g1", Sport: "badminton", AdminID: "admin1", Players: []string{"admin1"}}

		mockService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params game.CreateGameParams) (game.Game, error) {
				assert.Equal(t, "badminton", params.Sport)
				assert.Equal(t, "admin1", params.AdminID)
				assert.Equal(t, 3, params.CourtNumber)
				return created, nil
			}).Times(1)

		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/creategame", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)

		var resp struct {
			Game game.Game `json:"game"`
		}
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "g1", resp.Game.ID)
	})

	t.Run("validation error", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Return(game.Game{}, game.ErrInvalidCapacity).Times(1)

		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/creategame", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("slot taken", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Return(game.Game{}, bk.ErrSlotTaken).Times(1)

		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/creategame", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"slot already booked"}`, w.Body.String())
	})

	t.Run("venue not found", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Return(game.Game{}, bk.ErrVenueNotFound).Times(1)

		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/creategame", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestListGames(t *testing.T) {
	page := game.Page{
		Page:  1,
		Limit: 10,
		Total: 1,
		Games: []game.Summary{{ID: "g1", Sport: "badminton", VenueName: "Court Central"}},
	}

	t.Run("public listing", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		pageJson, _ := json.Marshal(page)
		mockService.EXPECT().ListPublicUpcoming(gomock.Any(), nil, 1, 10).Return(page, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(pageJson), w.Body.String())
	})

	t.Run("with coordinates", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		coords := &game.Coordinates{Lat: 27.7172, Lng: 85.324}
		mockService.EXPECT().ListPublicUpcoming(gomock.Any(), coords, 2, 5).Return(page, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game?page=2&limit=5&lat=27.7172&lng=85.3240", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("bad coordinates", func(t *testing.T) {
		router, ctrl, _ := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game?lat=north&lng=west", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse coordinates"}`, w.Body.String())
	})

	t.Run("bad pagination", func(t *testing.T) {
		router, ctrl, _ := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game?page=first", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse pagination"}`, w.Body.String())
	})

	t.Run("upcoming for user", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		summaries := []game.Summary{{ID: "g2", AdminID: "user1", IsUserAdmin: true}}
		mockService.EXPECT().ListUpcomingForUser(gomock.Any(), "user1").Return(summaries, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game/upcoming", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().ListPublicUpcoming(gomock.Any(), nil, 1, 10).Return(game.Page{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch games"}`, w.Body.String())
	})
}

func TestGetGameByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		g := game.Game{ID: "g1", Sport: "badminton", Status: "active"}
		mockService.EXPECT().FindGameByID(gomock.Any(), "g1").Return(g, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game/g1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().FindGameByID(gomock.Any(), "g1").Return(game.Game{}, game.ErrGameNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game/g1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"game not found"}`, w.Body.String())
	})
}

func TestRequestJoinGame(t *testing.T) {
	t.Run("success with comment", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().RequestJoin(gomock.Any(), "g1", "user1", "count me in").Return(nil).Times(1)

		body := []byte(`{"comment":"count me in"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/g1/request", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"request sent successfully"}`, w.Body.String())
	})

	t.Run("success without body", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().RequestJoin(gomock.Any(), "g1", "user1", "").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/g1/request", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().RequestJoin(gomock.Any(), "g1", "user1", "").Return(game.ErrDuplicateRequest).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/g1/request", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"request already sent"}`, w.Body.String())
	})

	t.Run("game not found", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().RequestJoin(gomock.Any(), "g1", "user1", "").Return(game.ErrGameNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/g1/request", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestAcceptJoinRequest(t *testing.T) {
	body := []byte(`{"gameId":"g1","userId":"user2"}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		updated := game.Game{ID: "g1", Players: []string{"admin1", "user2"}, MatchFull: false}
		mockService.EXPECT().AcceptRequest(gomock.Any(), "g1", "admin1", "user2").Return(updated, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/accept", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var resp struct {
			Game game.Game `json:"game"`
		}
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"admin1", "user2"}, resp.Game.Players)
	})

	t.Run("match full", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().AcceptRequest(gomock.Any(), "g1", "admin1", "user2").Return(game.Game{}, game.ErrMatchFull).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/accept", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"game is already full"}`, w.Body.String())
	})

	t.Run("not the admin", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "stranger")
		defer ctrl.Finish()

		mockService.EXPECT().AcceptRequest(gomock.Any(), "g1", "stranger", "user2").Return(game.Game{}, game.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/accept", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("request not found", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().AcceptRequest(gomock.Any(), "g1", "admin1", "user2").Return(game.Game{}, game.ErrRequestNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/accept", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestCancelGameRoute(t *testing.T) {
	body := []byte(`{"gameId":"g1"}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().CancelGame(gomock.Any(), "g1", "admin1").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/cancel", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"game cancelled"}`, w.Body.String())
	})

	t.Run("not active", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().CancelGame(gomock.Any(), "g1", "admin1").Return(game.ErrGameNotActive).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/cancel", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"game is not active"}`, w.Body.String())
	})
}

func TestToggleMatchFull(t *testing.T) {
	body := []byte(`{"gameId":"g1"}`)

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "admin1")
		defer ctrl.Finish()

		mockService.EXPECT().RecomputeMatchFull(gomock.Any(), "g1", "admin1").Return(true, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/toggle-match-full", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"matchFull":true}`, w.Body.String())
	})

	t.Run("not the admin", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "stranger")
		defer ctrl.Finish()

		mockService.EXPECT().RecomputeMatchFull(gomock.Any(), "g1", "stranger").Return(false, game.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/game/toggle-match-full", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestGetGamePlayers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		players := []game.PlayerProfile{{UserID: "admin1", Username: "Alice", Skill: "advanced"}}
		mockService.EXPECT().GamePlayers(gomock.Any(), "g1").Return(players, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game/g1/players", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var resp struct {
			Players []game.PlayerProfile `json:"players"`
		}
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, len(resp.Players))
	})

	t.Run("game not found", func(t *testing.T) {
		router, ctrl, mockService := setupGameRouter(t, "user1")
		defer ctrl.Finish()

		mockService.EXPECT().GamePlayers(gomock.Any(), "g1").Return(nil, game.ErrGameNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/game/g1/players", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestGetGameRequests(t *testing.T) {
	router, ctrl, mockService := setupGameRouter(t, "admin1")
	defer ctrl.Finish()

	requests := []game.RequestProfile{{UserID: "user2", Username: "Bob", Comment: "please"}}
	requestsJson, _ := json.Marshal(requests)
	mockService.EXPECT().GameRequests(gomock.Any(), "g1").Return(requests, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/game/g1/requests", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(requestsJson), w.Body.String())
}
