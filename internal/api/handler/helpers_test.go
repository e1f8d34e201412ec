package handler

import (
	"HeidiCore/internal/model"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performRaw(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	out := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	m := map[string]*model.User{}
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, ins *model.InsertUser) (*model.User, error) {
	user := model.NewUser(ins)
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, id string, patch *model.UserPatch) (*model.User, error) {
	user := f.users[id]
	if user == nil {
		return nil, nil
	}
	patch.Apply(user)
	return user, nil
}

type fakeEarningRepo struct{ rows []*model.Earning }

func (f *fakeEarningRepo) GetEarnings(_ context.Context, userID string) ([]*model.Earning, error) {
	out := make([]*model.Earning, 0)
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEarningRepo) CreateEarning(_ context.Context, ins *model.InsertEarning) (*model.Earning, error) {
	row := model.NewEarning(ins)
	f.rows = append(f.rows, row)
	return row, nil
}

type fakeTierRepo struct{ rows []*model.SubscriptionTier }

func (f *fakeTierRepo) GetTiers(_ context.Context, userID string) ([]*model.SubscriptionTier, error) {
	out := make([]*model.SubscriptionTier, 0)
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTierRepo) CreateTier(_ context.Context, ins *model.InsertTier) (*model.SubscriptionTier, error) {
	row := model.NewTier(ins)
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeTierRepo) UpdateTier(_ context.Context, id string, patch *model.TierPatch) (*model.SubscriptionTier, error) {
	for _, r := range f.rows {
		if r.ID == id {
			patch.Apply(r)
			return r, nil
		}
	}
	return nil, nil
}

type fakeQuestRepo struct{ rows []*model.DragonQuest }

func (f *fakeQuestRepo) GetQuests(_ context.Context, userID string) ([]*model.DragonQuest, error) {
	out := make([]*model.DragonQuest, 0)
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeQuestRepo) CreateQuest(_ context.Context, ins *model.InsertQuest) (*model.DragonQuest, error) {
	row := model.NewQuest(ins)
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeQuestRepo) UpdateQuest(_ context.Context, id string, patch *model.QuestPatch) (*model.DragonQuest, error) {
	for _, r := range f.rows {
		if r.ID == id {
			patch.Apply(r)
			return r, nil
		}
	}
	return nil, nil
}

type fakePostRepo struct{ rows []*model.CommunityPost }

func (f *fakePostRepo) GetPosts(_ context.Context, userID string) ([]*model.CommunityPost, error) {
	out := make([]*model.CommunityPost, 0)
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePostRepo) CreatePost(_ context.Context, ins *model.InsertPost) (*model.CommunityPost, error) {
	row := model.NewPost(ins)
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakePostRepo) LikePost(_ context.Context, id string) (*model.CommunityPost, error) {
	for _, r := range f.rows {
		if r.ID == id {
			r.Likes++
			return r, nil
		}
	}
	return nil, nil
}

type fakeAnalyticsRepo struct{ rows []*model.AnalyticsSnapshot }

func (f *fakeAnalyticsRepo) GetAnalytics(_ context.Context, userID string, metric string) ([]*model.AnalyticsSnapshot, error) {
	out := make([]*model.AnalyticsSnapshot, 0)
	for _, r := range f.rows {
		if r.UserID == userID && (metric == "" || r.Metric == metric) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) CreateAnalytics(_ context.Context, ins *model.InsertAnalytics) (*model.AnalyticsSnapshot, error) {
	row := model.NewAnalytics(ins)
	f.rows = append(f.rows, row)
	return row, nil
}
