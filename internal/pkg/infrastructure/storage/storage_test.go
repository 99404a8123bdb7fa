package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/matryer/is"

	"github.com/diwise/iot-edge-sync/pkg/types"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func testTemplate() types.Template {
	commandID := uuid.NewString()

	return types.Template{
		ID:         uuid.NewString(),
		Name:       "soil sensor",
		OwnerEmail: "alice@example.com",
		Sensors: []types.Sensor{
			{ID: uuid.NewString(), Tag: "temp", Name: "Temperature", Order: 0},
			{ID: uuid.NewString(), Tag: "moist", Name: "Moisture", Order: 1},
		},
		Commands: []types.Command{
			{ID: commandID, DisplayName: "Pump", Name: "pump", Params: []float64{1, 30}},
		},
		Recipes: []types.Recipe{
			{
				ID:   uuid.NewString(),
				Name: "water",
				Steps: []types.RecipeStep{
					{ID: uuid.NewString(), CommandID: &commandID, Cycles: 1, Order: 0},
					{ID: uuid.NewString(), CommandID: &commandID, Cycles: 2, Order: 1},
				},
			},
			{
				ID:   uuid.NewString(),
				Name: "drain",
				Steps: []types.RecipeStep{
					{ID: uuid.NewString(), CommandID: &commandID, Cycles: 1, Order: 0},
				},
			},
		},
		Firmwares: []types.Firmware{
			{ID: uuid.NewString(), VersionNumber: "2.0", OriginalFileName: "v2.bin", StoredFileName: uuid.NewString() + ".bin"},
		},
	}
}

func findTemplate(t *testing.T, templates []types.Template, id string) types.Template {
	for _, tmpl := range templates {
		if tmpl.ID == id {
			return tmpl
		}
	}

	t.Fatalf("template %s not found", id)
	return types.Template{}
}

func TestGetTemplatesKeepsStepsWithTheirRecipes(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	tmpl := testTemplate()

	created, err := s.UpsertSyncedTemplate(ctx, tmpl, "user-1")
	is.NoErr(err)
	is.True(created)

	templates, err := s.GetTemplates(ctx)
	is.NoErr(err)

	stored := findTemplate(t, templates, tmpl.ID)
	is.Equal(len(stored.Recipes), 2)

	for _, want := range tmpl.Recipes {
		var got types.Recipe
		for _, recipe := range stored.Recipes {
			if recipe.ID == want.ID {
				got = recipe
			}
		}

		is.Equal(got.Name, want.Name)
		is.Equal(len(got.Steps), len(want.Steps))
	}
}

func TestUpsertSyncedTemplateReplacesChildrenWholesale(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	tmpl := testTemplate()

	created, err := s.UpsertSyncedTemplate(ctx, tmpl, "user-1")
	is.NoErr(err)
	is.True(created)

	created, err = s.UpsertSyncedTemplate(ctx, tmpl, "user-1")
	is.NoErr(err)
	is.True(!created)

	templates, err := s.GetTemplates(ctx)
	is.NoErr(err)

	stored := findTemplate(t, templates, tmpl.ID)
	is.Equal(len(stored.Sensors), 2)
	is.Equal(len(stored.Commands), 1)
	is.Equal(len(stored.Recipes), 2)
	is.Equal(len(stored.Recipes[0].Steps)+len(stored.Recipes[1].Steps), 3)
	is.Equal(len(stored.Firmwares), 1)
}

func TestDeleteStaleSyncedTemplatesReturnsFirmwareFiles(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	keep := testTemplate()
	stale := testTemplate()

	_, err := s.UpsertSyncedTemplate(ctx, keep, "user-1")
	is.NoErr(err)
	_, err = s.UpsertSyncedTemplate(ctx, stale, "user-1")
	is.NoErr(err)

	deleted, storedFiles, err := s.DeleteStaleSyncedTemplates(ctx, []string{keep.ID})
	is.NoErr(err)
	is.True(deleted >= 1)

	found := false
	for _, name := range storedFiles {
		if name == stale.Firmwares[0].StoredFileName {
			found = true
		}
	}
	is.True(found)

	templates, err := s.GetTemplates(ctx)
	is.NoErr(err)
	findTemplate(t, templates, keep.ID)

	for _, tmpl := range templates {
		is.True(tmpl.ID != stale.ID)
	}
}
