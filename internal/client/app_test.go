package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-nts-client/internal/config"
	"github.com/MKhiriev/go-nts-client/internal/logger"
	"github.com/MKhiriev/go-nts-client/internal/mock"
	"github.com/MKhiriev/go-nts-client/internal/utils"
	"github.com/MKhiriev/go-nts-client/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	var stdout, stderr bytes.Buffer
	cfg := config.NewClientConfig("nts.example.org", "", nil, models.NoPreference)

	return NewApp(mockAdapter, cfg, &stdout, &stderr), mockAdapter, &stdout, &stderr
}

func testState() models.NegotiatedState {
	return models.NegotiatedState{
		C2SKey:        []byte("0123456789abcdef0123456789abcdef"),
		S2CKey:        []byte("fedcba9876543210fedcba9876543210"),
		AEADAlgorithm: 15,
		Cookies:       [][]byte{[]byte("cookie-1"), []byte("cookie-2")},
		NTPServer:     "ntp.example.org",
		NTPPort:       123,
	}
}

func TestApp_Run_Success(t *testing.T) {
	a, mockAdapter, stdout, stderr := newTestApp(t)
	ctx := logger.Nop().WithContext(context.Background())
	state := testState()

	gomock.InOrder(
		mockAdapter.EXPECT().EstablishKeys(gomock.Any(), a.cfg).Return(state, nil),
		mockAdapter.EXPECT().SyncTime(gomock.Any(), state).Return(models.TimeSyncResult{Stratum: 2, TimeDiff: 0.001234}, nil),
	)

	code := a.Run(ctx)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "stratum: 2\noffset: 0.001234\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.NoError(t, a.Err())
}

func TestApp_Run_NegativeOffset(t *testing.T) {
	a, mockAdapter, stdout, _ := newTestApp(t)
	ctx := context.Background()

	mockAdapter.EXPECT().EstablishKeys(gomock.Any(), gomock.Any()).Return(testState(), nil)
	mockAdapter.EXPECT().SyncTime(gomock.Any(), gomock.Any()).Return(models.TimeSyncResult{Stratum: 1, TimeDiff: -0.5}, nil)

	require.Equal(t, ExitOK, a.Run(ctx))
	assert.Equal(t, "stratum: 1\noffset: -0.500000\n", stdout.String())
}

func TestApp_Run_KEFailure(t *testing.T) {
	a, mockAdapter, stdout, stderr := newTestApp(t)
	ctx := context.Background()
	keErr := errors.New("connection refused")

	mockAdapter.EXPECT().EstablishKeys(gomock.Any(), a.cfg).Return(models.NegotiatedState{}, keErr)
	mockAdapter.EXPECT().SyncTime(gomock.Any(), gomock.Any()).Times(0)

	code := a.Run(ctx)

	assert.Equal(t, ExitKEFailed, code)
	assert.Equal(t, "failure of tls stage: connection refused\n", stderr.String())
	assert.Empty(t, stdout.String())
	assert.ErrorIs(t, a.Err(), ErrKEStage)
	assert.ErrorIs(t, a.Err(), keErr)
}

func TestApp_Run_NTPFailure(t *testing.T) {
	a, mockAdapter, stdout, stderr := newTestApp(t)
	ctx := context.Background()
	state := testState()
	ntpErr := errors.New("read udp: i/o timeout")

	gomock.InOrder(
		mockAdapter.EXPECT().EstablishKeys(gomock.Any(), a.cfg).Return(state, nil),
		mockAdapter.EXPECT().SyncTime(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got models.NegotiatedState) (models.TimeSyncResult, error) {
				assert.Equal(t, testState(), got, "state must reach the NTP phase unmodified")
				return models.TimeSyncResult{}, ntpErr
			},
		),
	)

	code := a.Run(ctx)

	assert.Equal(t, ExitNTPFailed, code)
	assert.Equal(t, "failure of client: read udp: i/o timeout\n", stderr.String())
	assert.Empty(t, stdout.String())
	assert.ErrorIs(t, a.Err(), ErrNTPStage)
	assert.ErrorIs(t, a.Err(), ntpErr)
}

func TestApp_Run_ResetsError(t *testing.T) {
	a, mockAdapter, _, _ := newTestApp(t)
	ctx := context.Background()

	mockAdapter.EXPECT().EstablishKeys(gomock.Any(), gomock.Any()).Return(models.NegotiatedState{}, errors.New("boom"))
	require.Equal(t, ExitKEFailed, a.Run(ctx))
	require.Error(t, a.Err())

	mockAdapter.EXPECT().EstablishKeys(gomock.Any(), gomock.Any()).Return(testState(), nil)
	mockAdapter.EXPECT().SyncTime(gomock.Any(), gomock.Any()).Return(models.TimeSyncResult{Stratum: 3}, nil)
	require.Equal(t, ExitOK, a.Run(ctx))
	assert.NoError(t, a.Err())
}

func TestApp_Run_TagsLogsWithRunID(t *testing.T) {
	a, mockAdapter, _, _ := newTestApp(t)
	var logs bytes.Buffer
	log := logger.NewClientLogger("nts-client", &logs, zerolog.DebugLevel)
	ctx := utils.WithRunID(log.WithContext(context.Background()), "run-42")

	mockAdapter.EXPECT().EstablishKeys(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ config.ClientConfig) (models.NegotiatedState, error) {
			runID, ok := utils.GetRunIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "run-42", runID)
			return models.NegotiatedState{}, errors.New("boom")
		},
	)

	require.Equal(t, ExitKEFailed, a.Run(ctx))
	assert.Contains(t, logs.String(), `"run_id":"run-42"`)
	assert.Contains(t, logs.String(), `"exit_code":125`)
}

func TestApp_Run_GeneratesRunID(t *testing.T) {
	a, mockAdapter, _, _ := newTestApp(t)

	mockAdapter.EXPECT().EstablishKeys(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ config.ClientConfig) (models.NegotiatedState, error) {
			runID, ok := utils.GetRunIDFromContext(ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, runID)
			return models.NegotiatedState{}, errors.New("boom")
		},
	)

	assert.Equal(t, ExitKEFailed, a.Run(context.Background()))
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
