package analytics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifmsabrazil/adminpanel/analytics"
	"github.com/ifmsabrazil/adminpanel/models"
)

type fakeSource struct {
	participants  []models.Participant
	registrations []models.Registration
	byType        map[string][]models.Participant
	failOn        string
	calls         atomic.Int32
	// barrier, when set, makes every fetch wait until all four have started.
	barrier *sync.WaitGroup
}

func (f *fakeSource) enter(name string) error {
	f.calls.Add(1)
	if f.barrier != nil {
		f.barrier.Done()
		f.barrier.Wait()
	}
	if f.failOn == name {
		return errors.New("store unavailable")
	}
	return nil
}

func (f *fakeSource) ParticipantsByAssembly(_ context.Context, _ string) ([]models.Participant, error) {
	if err := f.enter("participants"); err != nil {
		return nil, err
	}
	return f.participants, nil
}

func (f *fakeSource) ParticipantsByType(_ context.Context, participantType string) ([]models.Participant, error) {
	if err := f.enter(participantType); err != nil {
		return nil, err
	}
	return f.byType[participantType], nil
}

func (f *fakeSource) RegistrationsByAssembly(_ context.Context, _ string) ([]models.Registration, error) {
	if err := f.enter("registrations"); err != nil {
		return nil, err
	}
	return f.registrations, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_Aggregator_Compute_ProjectsFetchedRows(t *testing.T) {
	source := &fakeSource{
		participants: []models.Participant{comite("BR001", models.StatusPleno, "a")},
		registrations: []models.Registration{
			registration("r1", "BR001", models.ParticipantTypeComite, models.RegistrationStatusApproved),
			registration("r2", "EB01", models.ParticipantTypeEB, models.RegistrationStatusApproved),
		},
		byType: map[string][]models.Participant{
			models.ParticipantTypeEB: {board(models.ParticipantTypeEB, "EB01", "Ana", "President")},
			models.ParticipantTypeCR: {board(models.ParticipantTypeCR, "CR01", "Carla", "Sul")},
		},
	}
	aggregator := analytics.NewAggregator(source, quietLogger(), analytics.WithClock(func() time.Time { return fixedNow }))

	report, err := aggregator.Compute(context.Background(), " ag-1 ")

	require.NoError(t, err)
	assert.Equal(t, "ag-1", report.AssemblyID)
	assert.Equal(t, 1, report.ComitesPlenos.Registered)
	assert.Equal(t, 1, report.EBs.Registered)
	assert.Equal(t, 0, report.CRs.Registered)
	assert.Equal(t, 3, report.Summary.TotalPredefinedParticipants)
	assert.Equal(t, fixedNow.UnixMilli(), report.LastUpdated)
	assert.Equal(t, int32(4), source.calls.Load())
}

func Test_Aggregator_Compute_RunsFetchesConcurrently(t *testing.T) {
	barrier := &sync.WaitGroup{}
	barrier.Add(4)
	source := &fakeSource{barrier: barrier}
	aggregator := analytics.NewAggregator(source, quietLogger())

	done := make(chan error, 1)
	go func() {
		_, err := aggregator.Compute(context.Background(), "ag-1")
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("fetches did not run concurrently")
	}
}

func Test_Aggregator_Compute_RejectsBlankAssemblyIDWithoutFetching(t *testing.T) {
	source := &fakeSource{}
	aggregator := analytics.NewAggregator(source, quietLogger())

	_, err := aggregator.Compute(context.Background(), "   ")

	assert.ErrorIs(t, err, analytics.ErrInvalidAssemblyID)
	assert.Equal(t, int32(0), source.calls.Load())
}

func Test_Aggregator_Compute_FetchFailureFailsWholeComputation(t *testing.T) {
	for _, failing := range []string{"participants", "registrations", models.ParticipantTypeEB, models.ParticipantTypeCR} {
		t.Run(failing, func(t *testing.T) {
			source := &fakeSource{failOn: failing}
			aggregator := analytics.NewAggregator(source, quietLogger())

			report, err := aggregator.Compute(context.Background(), "ag-1")

			assert.ErrorIs(t, err, analytics.ErrFetchFailed)
			assert.Contains(t, err.Error(), "store unavailable")
			assert.Equal(t, models.AnalyticsReport{}, report)
		})
	}
}
