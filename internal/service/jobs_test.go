package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/benford-auth/internal/models"
)

func TestListJobs_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.Job{
		{JobID: 1, UserID: 80001, Status: "completed", OriginalDataFile: "report.pdf"},
		{JobID: 2, UserID: 80002, Status: "processing", OriginalDataFile: "ledger.pdf"},
	}
	st.EXPECT().ListJobs(gomock.Any()).Return(want, nil)

	got, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestListJobs_Empty(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListJobs(gomock.Any()).Return(nil, nil)

	got, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListJobs_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListJobs(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.ListJobs(context.Background())
	require.Error(t, err)
}
