package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifmsabrazil/adminpanel/analytics"
	"github.com/ifmsabrazil/adminpanel/models"
)

var fixedNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func comite(id, status, name string) models.Participant {
	return models.Participant{AssemblyID: "ag-1", Type: models.ParticipantTypeComite, ParticipantID: id, Status: status, Name: name}
}

func board(participantType, id, name, role string) models.Participant {
	return models.Participant{Type: participantType, ParticipantID: id, Name: name, Role: role}
}

func registration(id, participantID, participantType, status string) models.Registration {
	return models.Registration{ID: id, AssemblyID: "ag-1", ParticipantID: participantID, ParticipantType: participantType, Status: status}
}

func Test_Project_DuplicateCommitteeRowsCollapse(t *testing.T) {
	in := analytics.Inputs{
		AssemblyID: "ag-1",
		Participants: []models.Participant{
			comite("BR001", models.StatusPleno, "first"),
			comite("BR001", models.StatusPleno, "second"),
		},
		Registrations: []models.Registration{
			registration("r1", "BR001", models.ParticipantTypeComite, models.RegistrationStatusApproved),
		},
	}

	report := analytics.Project(in, fixedNow)

	bucket := report.ComitesPlenos
	assert.Equal(t, 1, bucket.Total)
	assert.Equal(t, 1, bucket.Registered)
	assert.Equal(t, 0, bucket.Unregistered)
	assert.Equal(t, 100.0, bucket.RegistrationRate)
	require.Len(t, bucket.Details, 1)
	assert.Equal(t, "first", bucket.Details[0].Name)
	assert.Equal(t, 1, bucket.Details[0].RegistrationCount)
	require.NotNil(t, bucket.Details[0].Registration)
	assert.Equal(t, "r1", bucket.Details[0].Registration.ID)
}

func Test_Project_DedupesOnTrimmedParticipantID(t *testing.T) {
	in := analytics.Inputs{
		Participants: []models.Participant{
			comite(" BR002 ", models.StatusPleno, "padded"),
			comite("BR002", models.StatusPleno, "plain"),
		},
		Registrations: []models.Registration{
			registration("r1", "BR002  ", models.ParticipantTypeComite, models.RegistrationStatusPending),
		},
	}

	report := analytics.Project(in, fixedNow)

	require.Len(t, report.ComitesPlenos.Details, 1)
	assert.Equal(t, "BR002", report.ComitesPlenos.Details[0].ParticipantID)
	assert.Equal(t, "padded", report.ComitesPlenos.Details[0].Name)
	assert.True(t, report.ComitesPlenos.Details[0].IsRegistered)
}

func Test_Project_CancelledAndRejectedRegistrationsDoNotCount(t *testing.T) {
	in := analytics.Inputs{
		Participants: []models.Participant{
			comite("BR001", models.StatusPleno, "a"),
			comite("BR002", models.StatusPleno, "b"),
		},
		Registrations: []models.Registration{
			registration("r1", "BR001", models.ParticipantTypeComite, models.RegistrationStatusCancelled),
			registration("r2", "BR002", models.ParticipantTypeComite, models.RegistrationStatusRejected),
		},
	}

	report := analytics.Project(in, fixedNow)

	assert.Equal(t, 0, report.ComitesPlenos.Registered)
	assert.Equal(t, 2, report.ComitesPlenos.Unregistered)
	assert.Equal(t, 0, report.Summary.TotalActiveRegistrations)
	for _, d := range report.ComitesPlenos.Details {
		assert.False(t, d.IsRegistered)
		assert.Nil(t, d.Registration)
	}
}

func Test_Project_WhitespaceParticipantIDIsExcluded(t *testing.T) {
	in := analytics.Inputs{
		Participants: []models.Participant{
			comite("  ", models.StatusPleno, "blank"),
			comite("", models.StatusNaoPleno, "empty"),
		},
		EBRoster: []models.Participant{board(models.ParticipantTypeEB, "   ", "ghost", "President")},
	}

	report := analytics.Project(in, fixedNow)

	assert.Equal(t, 0, report.ComitesPlenos.Total)
	assert.Equal(t, 0, report.ComitesNaoPlenos.Total)
	assert.Equal(t, 0, report.EBs.Total)
	assert.Equal(t, 0, report.Summary.TotalPredefinedParticipants)
}

func Test_Project_MissingCommitteeStatusDefaultsToNaoPleno(t *testing.T) {
	in := analytics.Inputs{
		Participants: []models.Participant{
			comite("BR010", "", "no status"),
			comite("BR011", models.StatusNaoPleno, "explicit"),
			comite("BR012", models.StatusPleno, "pleno"),
		},
	}

	report := analytics.Project(in, fixedNow)

	assert.Equal(t, 1, report.ComitesPlenos.Total)
	assert.Equal(t, 2, report.ComitesNaoPlenos.Total)
}

func Test_Project_BoardAttachesRegistrationOfOwnTypeOnly(t *testing.T) {
	in := analytics.Inputs{
		EBRoster: []models.Participant{
			board(models.ParticipantTypeEB, "EB01", " Ana ", " President "),
			board(models.ParticipantTypeEB, "EB02", "Bruno", "Treasurer"),
			board(models.ParticipantTypeEB, "EB01", "Ana again", "President"),
		},
		CRRoster: []models.Participant{
			board(models.ParticipantTypeCR, "CR01", "Carla", "Sul"),
		},
		Registrations: []models.Registration{
			registration("r1", "EB01", "other", models.RegistrationStatusApproved),
			registration("r2", "EB01", models.ParticipantTypeEB, models.RegistrationStatusApproved),
			registration("r3", "EB02", "guest", models.RegistrationStatusApproved),
			registration("r4", "CR01", models.ParticipantTypeCR, models.RegistrationStatusApproved),
		},
	}

	report := analytics.Project(in, fixedNow)

	require.Len(t, report.EBs.Details, 2)
	ana := report.EBs.Details[0]
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, "President", ana.Role)
	assert.True(t, ana.IsRegistered)
	require.NotNil(t, ana.Registration)
	assert.Equal(t, "r2", ana.Registration.ID)

	bruno := report.EBs.Details[1]
	assert.True(t, bruno.IsRegistered, "any active registration marks a board member registered")
	assert.Nil(t, bruno.Registration)

	assert.Equal(t, 2, report.EBs.Registered)
	assert.Equal(t, 1, report.CRs.Registered)
	assert.Equal(t, 100.0, report.CRs.RegistrationRate)
}

func Test_Project_OthersGroupedByRoleThenTypeThenUnknown(t *testing.T) {
	in := analytics.Inputs{
		Participants: []models.Participant{comite("BR001", models.StatusPleno, "a")},
		Registrations: []models.Registration{
			registration("r1", "BR001", models.ParticipantTypeComite, models.RegistrationStatusApproved),
			{ID: "r2", ParticipantID: "X1", ParticipantType: "guest", Status: models.RegistrationStatusPending},
			{ID: "r3", ParticipantID: "X2", ParticipantType: "guest", ParticipantRole: "observer", Status: models.RegistrationStatusPending},
			{ID: "r4", ParticipantID: "X3", Status: models.RegistrationStatusPending},
			{ID: "r5", ParticipantID: "X4", ParticipantType: "guest", Status: models.RegistrationStatusPending},
			{ID: "r6", ParticipantID: "EB9", ParticipantType: models.ParticipantTypeEB, Status: models.RegistrationStatusPending},
			{ID: "r7", ParticipantID: "X5", ParticipantType: "guest", Status: models.RegistrationStatusCancelled},
		},
	}

	report := analytics.Project(in, fixedNow)

	assert.Equal(t, 4, report.Others.Total)
	assert.Equal(t, []models.RoleCount{
		{Role: "guest", Count: 2},
		{Role: "observer", Count: 1},
		{Role: "unknown", Count: 1},
	}, report.Others.ByRole)
	assert.Equal(t, 4, report.Summary.TotalOtherRegistrations)
	assert.Equal(t, 6, report.Summary.TotalActiveRegistrations)
}

func Test_Project_EmptyInputYieldsZeroReport(t *testing.T) {
	report := analytics.Project(analytics.Inputs{AssemblyID: "ag-empty"}, fixedNow)

	assert.Equal(t, "ag-empty", report.AssemblyID)
	assert.Equal(t, models.AnalyticsSummary{}, report.Summary)
	assert.Equal(t, 0.0, report.ComitesPlenos.RegistrationRate)
	assert.Equal(t, 0.0, report.EBs.RegistrationRate)
	assert.NotNil(t, report.Others.Details)
	assert.Empty(t, report.Others.Details)
	assert.NotNil(t, report.ComitesPlenos.Details)
	assert.Equal(t, fixedNow.UnixMilli(), report.LastUpdated)
}

func Test_Project_SummaryAddsUpBuckets(t *testing.T) {
	in := analytics.Inputs{
		Participants: []models.Participant{
			comite("BR001", models.StatusPleno, "a"),
			comite("BR002", models.StatusNaoPleno, "b"),
			comite("BR003", models.StatusNaoPleno, "c"),
		},
		EBRoster: []models.Participant{board(models.ParticipantTypeEB, "EB01", "Ana", "President")},
		Registrations: []models.Registration{
			registration("r1", "BR001", models.ParticipantTypeComite, models.RegistrationStatusApproved),
			registration("r2", "BR001", models.ParticipantTypeComite, models.RegistrationStatusApproved),
			registration("r3", "BR003", models.ParticipantTypeComite, models.RegistrationStatusPending),
		},
	}

	report := analytics.Project(in, fixedNow)

	assert.Equal(t, 4, report.Summary.TotalPredefinedParticipants)
	assert.Equal(t, 2, report.Summary.TotalRegisteredPredefined)
	assert.Equal(t, 3, report.Summary.TotalActiveRegistrations)
	assert.Equal(t, 0, report.Summary.TotalOtherRegistrations)
	assert.Equal(t, 50.0, report.Summary.OverallRegistrationRate)
	assert.Equal(t, 2, report.ComitesPlenos.Details[0].RegistrationCount)
}
