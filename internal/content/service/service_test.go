package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saamcabins/cms-backend/internal/content"
	"github.com/saamcabins/cms-backend/internal/content/repository"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return New(repository.NewFileStore(filepath.Join(t.TempDir(), "content.json")))
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	data := json.RawMessage(`{"id":"cabin-1","name":"Office Cabin","description":"6x3m","price":9500,"capacity":4,"bedrooms":1,"bathrooms":1,"images":["/images/cabins/a.jpg"],"amenities":["AC"],"featured":true}`)
	require.NoError(t, svc.Create(ctx, content.TypeCabin, data))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Cabins, 1)
	got := doc.Cabins[0]
	require.Equal(t, "cabin-1", got.ID)
	require.Equal(t, "Office Cabin", got.Name)
	require.Equal(t, 9500, got.Price)
	require.Equal(t, []string{"/images/cabins/a.jpg"}, got.Images)
	require.True(t, got.Featured)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, svc.Create(ctx, content.TypeAmenity, json.RawMessage(`{"name":"WiFi"}`)))
	}

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Amenities, 10)
	seen := map[string]bool{}
	for _, a := range doc.Amenities {
		require.NotEmpty(t, a.ID)
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestUpdateShallowMerges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	create := json.RawMessage(`{"id":"cabin-1","name":"Office Cabin","description":"6x3m","price":9500}`)
	require.NoError(t, svc.Create(ctx, content.TypeCabin, create))

	require.NoError(t, svc.Update(ctx, content.TypeCabin, "cabin-1", json.RawMessage(`{"price":500}`)))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Cabins, 1)
	require.Equal(t, 500, doc.Cabins[0].Price)
	require.Equal(t, "Office Cabin", doc.Cabins[0].Name, "unpatched fields must survive")
	require.Equal(t, "6x3m", doc.Cabins[0].Description)
}

func TestUpdateCannotRewriteID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, content.TypeGallery, json.RawMessage(`{"id":"gallery-1","title":"Exterior"}`)))
	require.NoError(t, svc.Update(ctx, content.TypeGallery, "gallery-1", json.RawMessage(`{"id":"gallery-9","title":"Interior"}`)))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Gallery, 1)
	require.Equal(t, "gallery-1", doc.Gallery[0].ID)
	require.Equal(t, "Interior", doc.Gallery[0].Title)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	svc := newTestService(t)
	err := svc.Update(context.Background(), content.TypeCabin, "cabin-missing", json.RawMessage(`{"price":1}`))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMissingIDSucceeds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, content.TypeAmenity, json.RawMessage(`{"id":"amenity-1","name":"WiFi"}`)))
	require.NoError(t, svc.Delete(ctx, content.TypeAmenity, "amenity-missing"))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Amenities, 1, "deleting an unknown id must not mutate the collection")
}

func TestCreateDeleteCounts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ids := []string{"cabin-a", "cabin-b", "cabin-c", "cabin-d"}
	for _, id := range ids {
		require.NoError(t, svc.Create(ctx, content.TypeCabin, json.RawMessage(`{"id":"`+id+`","name":"x"}`)))
	}
	require.NoError(t, svc.Delete(ctx, content.TypeCabin, "cabin-b"))
	require.NoError(t, svc.Delete(ctx, content.TypeCabin, "cabin-d"))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Cabins, 2)
	require.Equal(t, "cabin-a", doc.Cabins[0].ID)
	require.Equal(t, "cabin-c", doc.Cabins[1].ID)
}

func TestUnknownTypeRejected(t *testing.T) {
	svc := newTestService(t)
	err := svc.Create(context.Background(), "booking", json.RawMessage(`{}`))
	require.ErrorIs(t, err, repository.ErrUnknownType)
}

func TestUpdateSettingsMerges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateSettings(ctx, json.RawMessage(`{"siteName":"SAAM Cabins","tagline":"Premium Porta Cabins"}`)))
	require.NoError(t, svc.UpdateSettings(ctx, json.RawMessage(`{"logo":"/images/uploads/logo.png"}`)))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc.SiteSettings)
	require.Equal(t, "SAAM Cabins", doc.SiteSettings.SiteName, "earlier settings fields must survive a partial update")
	require.Equal(t, "/images/uploads/logo.png", doc.SiteSettings.Logo)
}

func TestUpdateAboutUs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateAboutUs(ctx, json.RawMessage(`{"content":"Family business since 2005","image":"/images/about/team.jpg"}`)))

	doc, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc.AboutUs)
	require.Equal(t, "Family business since 2005", doc.AboutUs.Content)
}

func TestInvalidDataRejected(t *testing.T) {
	svc := newTestService(t)
	err := svc.Create(context.Background(), content.TypeCabin, json.RawMessage(`{"price":"not a number"}`))
	require.ErrorIs(t, err, repository.ErrInvalidData)
}
