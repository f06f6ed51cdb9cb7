package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/MKhiriev/kittygram-client/internal/mock"
	"github.com/MKhiriev/kittygram-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type viewerFunc func(ctx context.Context) string

func (f viewerFunc) Username(ctx context.Context) string { return f(ctx) }

func newTestCatSvc(t *testing.T, viewer ViewerSource) (ClientCatService, *mock.MockCatalogAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockCatalogAdapter(ctrl)
	return NewClientCatService(mockAdapter, viewer, nil), mockAdapter
}

func strPtr(s string) *string { return &s }

// ── ListCatalog ──────────────────────────────────────────────────────────────

func TestClientCatService_ListCatalog_Success(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().List(ctx, 2).Return(models.CatListResponse{
		Count:    3,
		Results:  []models.Cat{{ID: 7, Name: "Пушок", Color: "gray", BirthYear: 2018}},
		Next:     strPtr("http://localhost:8000/api/cats/?page=3"),
		Previous: strPtr("http://localhost:8000/api/cats/"),
	}, nil)

	page := svc.ListCatalog(ctx, 2)

	assert.False(t, page.Offline)
	assert.Empty(t, page.Notice)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Пушок", page.Items[0].Name)
	assert.Equal(t, models.PageCursor{CurrentPage: 2, HasNext: true, HasPrevious: true}, page.Cursor)
	assert.True(t, page.Cursor.Visible())
}

func TestClientCatService_ListCatalog_SinglePageHidesPagination(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().List(gomock.Any(), 1).Return(models.CatListResponse{
		Count:   1,
		Results: []models.Cat{{ID: 1, Name: "Кузя"}},
	}, nil)

	page := svc.ListCatalog(context.Background(), 1)
	assert.False(t, page.Cursor.Visible())
}

func TestClientCatService_ListCatalog_EmptyResults(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().List(gomock.Any(), 1).Return(models.CatListResponse{}, nil)

	page := svc.ListCatalog(context.Background(), 1)
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.Offline)
}

func TestClientCatService_ListCatalog_PageBelowOneIsClamped(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().List(gomock.Any(), 1).Return(models.CatListResponse{}, nil)

	page := svc.ListCatalog(context.Background(), 0)
	assert.Equal(t, 1, page.Cursor.CurrentPage)
}

func TestClientCatService_ListCatalog_FallsBackToPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "network", err: fmt.Errorf("list cats request: %w: %w", adapter.ErrNetwork, errors.New("dial tcp: refused"))},
		{name: "server error", err: adapter.NewResponseError(500, "")},
		{name: "unauthorized", err: adapter.NewResponseError(401, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestCatSvc(t, nil)
			mockAdapter.EXPECT().List(gomock.Any(), 3).Return(models.CatListResponse{}, tt.err)

			page := svc.ListCatalog(context.Background(), 3)

			assert.True(t, page.Offline)
			assert.Equal(t, app.MsgOfflineCatalog, page.Notice)
			assert.False(t, page.Cursor.Visible())

			require.Len(t, page.Items, 3)
			assert.Equal(t, "Мурзик", page.Items[0].Name)
			assert.Equal(t, "black", page.Items[0].Color)
			assert.Len(t, page.Items[0].Achievements, 2)
			assert.Equal(t, "Барсик", page.Items[1].Name)
			assert.Equal(t, "darkorange", page.Items[1].Color)
			assert.Equal(t, "Васька", page.Items[2].Name)
			assert.Empty(t, page.Items[2].Achievements)
		})
	}
}

func TestPlaceholderCats_FreshCopy(t *testing.T) {
	first := placeholderCats()
	first[0].Name = "changed"
	first[0].Achievements[0].Name = "changed"

	second := placeholderCats()
	assert.Equal(t, "Мурзик", second[0].Name)
	assert.Equal(t, "Ловец мышей", second[0].Achievements[0].Name)
}

// ── Get / Detail ─────────────────────────────────────────────────────────────

func TestClientCatService_Get(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)
	ctx := context.Background()

	want := models.Cat{ID: 5, Name: "Мурзик", Color: "black", BirthYear: 2020}
	mockAdapter.EXPECT().Get(ctx, int64(5)).Return(want, nil)

	got, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientCatService_Get_InvalidID(t *testing.T) {
	svc, _ := newTestCatSvc(t, nil)

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestClientCatService_Get_NotFound(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().Get(gomock.Any(), int64(9)).Return(models.Cat{}, adapter.NewResponseError(404, "Not found."))

	_, err := svc.Get(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, app.MsgNotFound, err.Error())
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestClientCatService_Detail_WithViewer(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, viewerFunc(func(context.Context) string { return "tom" }))

	cat := models.Cat{ID: 1, Name: "Мурзик"}
	mockAdapter.EXPECT().Get(gomock.Any(), int64(1)).Return(cat, nil)

	detail, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, cat, detail.Cat)
	assert.Equal(t, "tom", detail.Viewer)
}

func TestClientCatService_Detail_AnonymousViewer(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, viewerFunc(func(context.Context) string { return "" }))

	mockAdapter.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Cat{ID: 1}, nil)

	detail, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, detail.Viewer)
}

func TestClientCatService_Detail_NilViewer(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().Get(gomock.Any(), int64(1)).Return(models.Cat{ID: 1}, nil)

	detail, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Cat.ID)
}

func TestClientCatService_Detail_GetFailureCancelsViewer(t *testing.T) {
	viewer := viewerFunc(func(ctx context.Context) string {
		<-ctx.Done()
		return "late"
	})
	svc, mockAdapter := newTestCatSvc(t, viewer)

	mockAdapter.EXPECT().Get(gomock.Any(), int64(2)).Return(models.Cat{}, adapter.NewResponseError(500, ""))

	detail, err := svc.Detail(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, "Не удалось загрузить данные кота (код ошибки: 500)", err.Error())
	assert.Equal(t, models.CatDetail{}, detail)
}

// ── Create / Update / Delete ─────────────────────────────────────────────────

func TestClientCatService_Create(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)
	ctx := context.Background()

	payload := models.CatPayload{
		Name:         "Мурзик",
		Color:        "black",
		BirthYear:    2020,
		Achievements: []models.AchievementPayload{{Name: "Ловец мышей"}},
	}
	mockAdapter.EXPECT().Create(ctx, payload).Return(models.Cat{ID: 11, Name: "Мурзик"}, nil)

	cat, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cat.ID)
}

func TestClientCatService_Create_ServerDetail(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Cat{}, adapter.NewResponseError(400, "color: Для этого цвета нет имени"))

	_, err := svc.Create(context.Background(), models.CatPayload{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, "color: Для этого цвета нет имени", err.Error())
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestClientCatService_Create_Unauthorized(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Cat{}, adapter.NewResponseError(401, "Учетные данные не были предоставлены."))

	_, err := svc.Create(context.Background(), models.CatPayload{})
	require.Error(t, err)
	assert.Equal(t, app.MsgUnauthorized, err.Error())
}

func TestClientCatService_Update_SendsFullPatch(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)
	ctx := context.Background()

	payload := models.CatPayload{Name: "Барсик", Color: "darkorange", BirthYear: 2021}

	mockAdapter.EXPECT().Update(ctx, int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, patch models.CatPatch) (models.Cat, error) {
			require.NotNil(t, patch.Name)
			require.NotNil(t, patch.Color)
			require.NotNil(t, patch.BirthYear)
			require.NotNil(t, patch.Achievements)
			assert.Equal(t, "Барсик", *patch.Name)
			assert.Equal(t, "darkorange", *patch.Color)
			assert.Equal(t, 2021, *patch.BirthYear)
			assert.Empty(t, *patch.Achievements)
			assert.Nil(t, patch.Image)
			return models.Cat{ID: 4, Name: "Барсик"}, nil
		},
	)

	cat, err := svc.Update(ctx, 4, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cat.ID)
}

func TestClientCatService_Update_Failure(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).
		Return(models.Cat{}, adapter.NewResponseError(500, ""))

	_, err := svc.Update(context.Background(), 4, models.CatPayload{})
	require.Error(t, err)
	assert.Equal(t, app.MsgUpdateFailed, err.Error())
}

func TestClientCatService_Update_InvalidID(t *testing.T) {
	svc, _ := newTestCatSvc(t, nil)

	_, err := svc.Update(context.Background(), -1, models.CatPayload{})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestClientCatService_Delete(t *testing.T) {
	svc, mockAdapter := newTestCatSvc(t, nil)

	mockAdapter.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 3))
}

func TestClientCatService_Delete_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unauthorized", err: adapter.NewResponseError(401, ""), want: app.MsgUnauthorized},
		{name: "forbidden", err: adapter.NewResponseError(403, ""), want: app.MsgForbiddenDelete},
		{name: "not found", err: adapter.NewResponseError(404, ""), want: app.MsgNotFound},
		{name: "server", err: adapter.NewResponseError(503, ""), want: "Не удалось удалить кота (код ошибки: 503)"},
		{name: "network", err: fmt.Errorf("x: %w: %w", adapter.ErrNetwork, errors.New("timeout")), want: app.MsgNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestCatSvc(t, nil)
			mockAdapter.EXPECT().Delete(gomock.Any(), int64(3)).Return(tt.err)

			err := svc.Delete(context.Background(), 3)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
