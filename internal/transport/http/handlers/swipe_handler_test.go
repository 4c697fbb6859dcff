package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/askorokhod/unhinged/backend/internal/domain/model"
	authsvc "github.com/askorokhod/unhinged/backend/internal/services/auth"
	profilesvc "github.com/askorokhod/unhinged/backend/internal/services/profiles"
	swipesvc "github.com/askorokhod/unhinged/backend/internal/services/swipes"
)

func newSwipeFixture(t *testing.T, users ...string) (*SwipeHandler, *fakeProfileStore) {
	t.Helper()

	profiles := newFakeProfileStore()
	for _, id := range users {
		profiles.profiles[id] = model.Profile{UserID: id, Name: "User " + id}
	}

	swipeService := swipesvc.NewService(profiles, &fakeSwipeStore{}, newFakeMatchStore())
	profileService := profilesvc.NewService(profiles)
	return NewSwipeHandler(swipeService, profileService), profiles
}

func performSwipe(t *testing.T, h *SwipeHandler, viewerID, targetID, action string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"target_user_id": targetID,
		"action":         action,
	})
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/swipe", bytes.NewReader(body))
	if viewerID != "" {
		req = req.WithContext(authsvc.WithPrincipal(context.Background(), authsvc.Principal{UserID: viewerID}))
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestSwipeHandlerMutualLike(t *testing.T) {
	h, _ := newSwipeFixture(t, "user_a", "user_b")

	if resp := performSwipe(t, h, "user_b", "user_a", "like"); resp.Code != http.StatusOK {
		t.Fatalf("first like failed: %d %s", resp.Code, resp.Body.String())
	}

	resp := performSwipe(t, h, "user_a", "user_b", "like")
	if resp.Code != http.StatusOK {
		t.Fatalf("second like failed: %d %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Success      bool `json:"success"`
		MatchCreated bool `json:"match_created"`
		Match        *struct {
			MatchID     string `json:"match_id"`
			MatchedUser struct {
				UserID string `json:"user_id"`
				Name   string `json:"name"`
			} `json:"matched_user"`
		} `json:"match"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !payload.Success || !payload.MatchCreated {
		t.Fatalf("expected a match: %s", resp.Body.String())
	}
	if payload.Match == nil || payload.Match.MatchedUser.UserID != "user_b" {
		t.Fatalf("matched user missing or wrong: %s", resp.Body.String())
	}
	if payload.Match.MatchedUser.Name != "User user_b" {
		t.Fatalf("counterpart summary not populated: %s", resp.Body.String())
	}
}

func TestSwipeHandlerPassNeverMatches(t *testing.T) {
	h, _ := newSwipeFixture(t, "user_a", "user_b")

	performSwipe(t, h, "user_b", "user_a", "like")
	resp := performSwipe(t, h, "user_a", "user_b", "pass")

	var payload struct {
		MatchCreated bool `json:"match_created"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.MatchCreated {
		t.Fatalf("pass must not match: %s", resp.Body.String())
	}
}

func TestSwipeHandlerUnknownTarget(t *testing.T) {
	h, _ := newSwipeFixture(t, "user_a")

	resp := performSwipe(t, h, "user_a", "user_ghost", "like")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != "TARGET_NOT_FOUND" {
		t.Fatalf("unexpected code: %s", payload.Code)
	}
}

func TestSwipeHandlerValidation(t *testing.T) {
	h, _ := newSwipeFixture(t, "user_a", "user_b")

	if resp := performSwipe(t, h, "user_a", "user_b", "superlike"); resp.Code != http.StatusBadRequest {
		t.Fatalf("unknown action should 400, got %d", resp.Code)
	}
	if resp := performSwipe(t, h, "user_a", "", "like"); resp.Code != http.StatusBadRequest {
		t.Fatalf("blank target should 400, got %d", resp.Code)
	}
	if resp := performSwipe(t, h, "user_a", "user_a", "like"); resp.Code != http.StatusBadRequest {
		t.Fatalf("self swipe should 400, got %d", resp.Code)
	}
}

func TestSwipeHandlerRequiresPrincipal(t *testing.T) {
	h, _ := newSwipeFixture(t, "user_a", "user_b")

	if resp := performSwipe(t, h, "", "user_b", "like"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
