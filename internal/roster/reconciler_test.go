package roster_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csa-console/internal/model"
	"csa-console/internal/roster"
)

// recordingBackend запоминает запросы в порядке вызова и может падать на выбранных.
type recordingBackend struct {
	calls  []string
	bodies []model.UserUpdate
	fail   map[string]error
}

func (b *recordingBackend) record(call string) error {
	b.calls = append(b.calls, call)
	return b.fail[call]
}

func (b *recordingBackend) UpdateUser(_ context.Context, id string, u model.UserUpdate) error {
	b.bodies = append(b.bodies, u)
	return b.record("PUT /user/" + id)
}

func (b *recordingBackend) UpdateUserSchemes(_ context.Context, id string, _ []string) error {
	return b.record("PUT /scheme/" + id)
}

func (b *recordingBackend) DeleteUser(_ context.Context, id string) error {
	return b.record("DELETE /user/" + id)
}

func threeMembers() []model.TeamMember {
	return []model.TeamMember{
		{UUID: "1", Name: "Alice", Email: "alice@cpf.gov.sg", AccessRights: model.AccessTrainee, Schemes: []string{"Careshield"}},
		{UUID: "2", Name: "Bob", Email: "bob@cpf.gov.sg", AccessRights: model.AccessTrainee, Schemes: []string{"Careshield", "Medisave"}},
		{UUID: "3", Name: "Carol", Email: "carol@cpf.gov.sg", AccessRights: model.AccessTrainer, Schemes: nil},
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		edit        func(members []model.TeamMember) []model.TeamMember
		deleteQueue []string
		wantUpdates []string
		wantDeletes []string
	}{
		{
			name:        "No changes",
			edit:        func(m []model.TeamMember) []model.TeamMember { return m },
			wantUpdates: nil,
		},
		{
			name: "Schemes reordered only",
			edit: func(m []model.TeamMember) []model.TeamMember {
				m[1].Schemes = []string{"Medisave", "Careshield"}
				return m
			},
			wantUpdates: nil,
		},
		{
			name: "Scheme added",
			edit: func(m []model.TeamMember) []model.TeamMember {
				m[0].Schemes = append(m[0].Schemes, "Medisave")
				return m
			},
			wantUpdates: []string{"1"},
		},
		{
			name: "Email and password changed",
			edit: func(m []model.TeamMember) []model.TeamMember {
				m[1].Email = "robert@cpf.gov.sg"
				m[2].Password = "s3cret"
				return m
			},
			wantUpdates: []string{"2", "3"},
		},
		{
			name: "Queued member excluded from updates",
			edit: func(m []model.TeamMember) []model.TeamMember {
				m[2].Name = "Caroline"
				return m
			},
			deleteQueue: []string{"3", "3"},
			wantUpdates: nil,
			wantDeletes: []string{"3"},
		},
		{
			name: "Working order does not matter",
			edit: func(m []model.TeamMember) []model.TeamMember {
				m[0].AccessRights = model.AccessAdmin
				return []model.TeamMember{m[2], m[0], m[1]}
			},
			wantUpdates: []string{"1"},
		},
		{
			name: "Dept is read-only",
			edit: func(m []model.TeamMember) []model.TeamMember {
				m[0].Dept = "Finance"
				return m
			},
			wantUpdates: nil,
		},
		{
			name: "Unknown working member ignored",
			edit: func(m []model.TeamMember) []model.TeamMember {
				return append(m, model.TeamMember{UUID: "9", Name: "New"})
			},
			wantUpdates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := roster.New(threeMembers())
			working := roster.New(tt.edit(threeMembers()))

			plan := roster.Diff(original, working, tt.deleteQueue)

			var gotUpdates []string
			for _, m := range plan.Updates {
				gotUpdates = append(gotUpdates, m.UUID)
			}
			assert.Equal(t, tt.wantUpdates, gotUpdates)
			assert.Equal(t, tt.wantDeletes, plan.Deletes)
		})
	}
}

func TestReconciler_EditAndDelete(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())
	require.NoError(t, ed.SetField("2", roster.FieldEmail, "robert@cpf.gov.sg"))
	require.NoError(t, ed.QueueDelete("3"))

	plan, err := ed.Plan()
	require.NoError(t, err)

	backend := &recordingBackend{}
	res := roster.NewReconciler(backend, roster.ContinueOnError, nil).Apply(context.Background(), plan)

	assert.Equal(t, []string{"PUT /user/2", "PUT /scheme/2", "DELETE /user/3"}, backend.calls)
	assert.True(t, res.OK())
	assert.Len(t, res.Succeeded, 3)

	ed.Complete(res)
	view := ed.View()
	assert.Equal(t, roster.Viewing, view.State)
	require.Len(t, view.Members, 2)
	assert.Equal(t, "robert@cpf.gov.sg", view.Members[1].Email)
}

func TestReconciler_UpdateBody(t *testing.T) {
	members := threeMembers()
	members[1].Dept = "Ops"
	ed := roster.NewEditor(members)
	require.NoError(t, ed.Begin())
	require.NoError(t, ed.SetField("2", roster.FieldName, "Robert"))
	require.NoError(t, ed.SetField("2", roster.FieldPassword, "n3w-pass"))
	assert.ErrorIs(t, ed.SetField("2", "dept", "Finance"), roster.ErrUnknownField)

	plan, err := ed.Plan()
	require.NoError(t, err)

	backend := &recordingBackend{}
	res := roster.NewReconciler(backend, roster.ContinueOnError, nil).Apply(context.Background(), plan)
	require.True(t, res.OK())

	require.Len(t, backend.bodies, 1)
	assert.Equal(t, model.UserUpdate{
		Email:        "bob@cpf.gov.sg",
		Name:         "Robert",
		AccessRights: model.AccessTrainee,
		Schemes:      []string{"Careshield", "Medisave"},
		Password:     "n3w-pass",
	}, backend.bodies[0])

	ed.Complete(res)
	view := ed.View()
	assert.Equal(t, "Robert", view.Members[1].Name)
	assert.Equal(t, "Ops", view.Members[1].Dept)
	assert.Empty(t, view.Members[1].Password)
}

func TestReconciler_ContinueOnError(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())
	require.NoError(t, ed.SetField("2", roster.FieldEmail, "robert@cpf.gov.sg"))
	require.NoError(t, ed.QueueDelete("3"))
	plan, err := ed.Plan()
	require.NoError(t, err)

	backend := &recordingBackend{fail: map[string]error{
		"PUT /user/2": errors.New("connection reset"),
	}}
	res := roster.NewReconciler(backend, roster.ContinueOnError, nil).Apply(context.Background(), plan)

	assert.Equal(t, []string{"PUT /user/2", "PUT /scheme/2", "DELETE /user/3"}, backend.calls)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, roster.OpUpdateDetails, res.Failed[0].Kind)
	assert.Equal(t, "2", res.Failed[0].MemberID)
	assert.False(t, res.OK())

	ed.Complete(res)
	view := ed.View()
	assert.Equal(t, roster.Viewing, view.State)
	require.Len(t, view.Members, 2)
	// детали не сохранились, остаётся исходный email
	assert.Equal(t, "bob@cpf.gov.sg", view.Members[1].Email)
}

func TestReconciler_AbortOnError(t *testing.T) {
	original := roster.New(threeMembers())
	edited := threeMembers()
	edited[0].Name = "Alicia"
	edited[1].Name = "Bobby"
	working := roster.New(edited)
	plan := roster.Diff(original, working, []string{"3"})

	backend := &recordingBackend{fail: map[string]error{
		"PUT /scheme/1": fmt.Errorf("status 500"),
	}}
	res := roster.NewReconciler(backend, roster.AbortOnError, nil).Apply(context.Background(), plan)

	assert.Equal(t, []string{"PUT /user/1", "PUT /scheme/1"}, backend.calls)
	assert.Len(t, res.Succeeded, 1)
	assert.Len(t, res.Failed, 1)
	assert.Len(t, res.Skipped, 3)
	assert.Equal(t, 5, res.Total())
}

func TestReconciler_CancelledContext(t *testing.T) {
	original := roster.New(threeMembers())
	edited := threeMembers()
	edited[0].Name = "Alicia"
	plan := roster.Diff(original, roster.New(edited), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backend := &recordingBackend{}
	res := roster.NewReconciler(backend, roster.ContinueOnError, nil).Apply(ctx, plan)

	assert.Empty(t, backend.calls)
	assert.Len(t, res.Skipped, 2)
}

func TestReconciler_FailedDeleteRestoresMember(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())
	require.NoError(t, ed.QueueDelete("1"))
	plan, err := ed.Plan()
	require.NoError(t, err)

	backend := &recordingBackend{fail: map[string]error{"DELETE /user/1": errors.New("status 500")}}
	res := roster.NewReconciler(backend, roster.ContinueOnError, nil).Apply(context.Background(), plan)
	ed.Complete(res)

	view := ed.View()
	require.Len(t, view.Members, 3)
	assert.Equal(t, "1", view.Members[0].UUID)
	assert.Empty(t, view.PendingDeletes)
}
