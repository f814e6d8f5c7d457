package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/repo/filestore"
)

type fakeIntake struct {
	url   string
	err   error
	calls int
}

func (f *fakeIntake) Store(_ context.Context, _ *multipart.FileHeader, _ []string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newProjectService(t *testing.T, intake *fakeIntake) *ProjectService {
	t.Helper()
	fs, err := filestore.New(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return NewProjectService(fs.Projects(), intake)
}

func validInput() ProjectInput {
	return ProjectInput{ProjectName: "P", Category: "C", ProjectURL: "u", Stack: []string{"x"}}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newProjectService(t, &fakeIntake{})
	ctx := context.Background()

	cases := []ProjectInput{
		{Category: "C", ProjectURL: "u", Stack: []string{"x"}},
		{ProjectName: "P", ProjectURL: "u", Stack: []string{"x"}},
		{ProjectName: "P", Category: "C", Stack: []string{"x"}},
		{ProjectName: "P", Category: "C", ProjectURL: "u"},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, in, nil)
		var ae *apperr.Error
		require.True(t, errors.As(err, &ae))
		require.Equal(t, apperr.KindValidation, ae.Kind)
	}

	// nothing was persisted
	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCreate_RoundTrip(t *testing.T) {
	svc := newProjectService(t, &fakeIntake{})
	ctx := context.Background()

	p, err := svc.Create(ctx, validInput(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, p.ID, got[0].ID)
	require.Equal(t, "P", got[0].ProjectName)
}

func TestCreate_IntakeFailureFailsWholeCreate(t *testing.T) {
	intake := &fakeIntake{err: apperr.Upload("Error uploading image : boom", nil)}
	svc := newProjectService(t, intake)
	ctx := context.Background()

	fh := &multipart.FileHeader{Filename: "a.png", Size: 3}
	_, err := svc.Create(ctx, validInput(), fh)
	require.Error(t, err)
	require.Equal(t, 1, intake.calls)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUpdate_Missing(t *testing.T) {
	svc := newProjectService(t, &fakeIntake{})

	_, err := svc.Update(context.Background(), "42", validInput(), nil)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestDelete_MissingLeavesStoreUnchanged(t *testing.T) {
	svc := newProjectService(t, &fakeIntake{})
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput(), nil)
	require.NoError(t, err)

	err = svc.Delete(ctx, "99")
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, apperr.KindNotFound, ae.Kind)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestUpdate_NewImageReplacesOldOne(t *testing.T) {
	intake := &fakeIntake{url: "/public/images/new.jpg"}
	svc := newProjectService(t, intake)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput(), nil)
	require.NoError(t, err)

	fh := &multipart.FileHeader{Filename: "new.png", Size: 3}
	updated, err := svc.Update(ctx, created.ID, validInput(), fh)
	require.NoError(t, err)
	require.Equal(t, "/public/images/new.jpg", updated.Image)
}
