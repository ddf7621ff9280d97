package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csa-console/internal/model"
	"csa-console/internal/roster"
)

func TestEditor_Transitions(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	assert.Equal(t, roster.Viewing, ed.State())

	// в режиме просмотра правки запрещены
	assert.ErrorIs(t, ed.SetField("1", roster.FieldName, "x"), roster.ErrNotEditing)
	_, err := ed.Plan()
	assert.ErrorIs(t, err, roster.ErrNotEditing)

	require.NoError(t, ed.Begin())
	assert.ErrorIs(t, ed.Begin(), roster.ErrAlreadyEditing)
	assert.ErrorIs(t, ed.Reload(nil), roster.ErrAlreadyEditing)

	require.NoError(t, ed.Cancel())
	assert.Equal(t, roster.Viewing, ed.State())
}

func TestEditor_PlanLocksDraft(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())
	require.NoError(t, ed.SetField("1", roster.FieldName, "Alicia"))
	require.NoError(t, ed.QueueDelete("3"))

	plan, err := ed.Plan()
	require.NoError(t, err)
	assert.Equal(t, roster.Saving, ed.State())

	// пока план не завершён, второго сохранения и правок нет
	_, err = ed.Plan()
	assert.ErrorIs(t, err, roster.ErrSaving)
	assert.ErrorIs(t, ed.SetField("1", roster.FieldName, "Ally"), roster.ErrSaving)
	assert.ErrorIs(t, ed.SetSchemes("2", nil), roster.ErrSaving)
	assert.ErrorIs(t, ed.QueueDelete("2"), roster.ErrSaving)
	assert.ErrorIs(t, ed.Cancel(), roster.ErrSaving)
	assert.ErrorIs(t, ed.Begin(), roster.ErrSaving)
	assert.ErrorIs(t, ed.Reload(nil), roster.ErrSaving)

	view := ed.View()
	assert.Equal(t, roster.Saving, view.State)
	assert.Len(t, view.Members, 2)

	ed.Complete(roster.Result{Succeeded: plan.Operations()})
	view = ed.View()
	assert.Equal(t, roster.Viewing, view.State)
	require.Len(t, view.Members, 2)
	assert.Equal(t, "Alicia", view.Members[0].Name)

	require.NoError(t, ed.Begin())
}

func TestEditor_CancelRestoresOriginal(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())
	require.NoError(t, ed.SetField("1", roster.FieldName, "Alicia"))
	require.NoError(t, ed.SetSchemes("2", []string{"Silver support"}))
	require.NoError(t, ed.QueueDelete("3"))

	view := ed.View()
	assert.Len(t, view.Members, 2)
	assert.Equal(t, []string{"3"}, view.PendingDeletes)

	require.NoError(t, ed.Cancel())

	view = ed.View()
	assert.Equal(t, threeMembers(), view.Members)
	assert.Empty(t, view.PendingDeletes)
}

func TestEditor_SetFieldValidation(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())

	assert.ErrorIs(t, ed.SetField("42", roster.FieldName, "x"), roster.ErrUnknownMember)
	assert.ErrorIs(t, ed.SetField("1", "uuid", "x"), roster.ErrUnknownField)
	assert.ErrorIs(t, ed.SetField("1", roster.FieldAccessRights, "Owner"), roster.ErrInvalidAccessRights)
	require.NoError(t, ed.SetField("1", roster.FieldAccessRights, "Trainer"))

	plan, err := ed.Plan()
	require.NoError(t, err)
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, model.AccessTrainer, plan.Updates[0].AccessRights)
}

func TestEditor_ResetPassword(t *testing.T) {
	ed := roster.NewEditor(threeMembers())
	require.NoError(t, ed.Begin())

	pw, err := ed.ResetPassword("2")
	require.NoError(t, err)
	assert.Len(t, pw, 15)

	plan, err := ed.Plan()
	require.NoError(t, err)
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, pw, plan.Updates[0].Password)

	// после сохранения пароль в снимке не хранится
	ed.Complete(roster.Result{Succeeded: plan.Operations()})
	for _, m := range ed.View().Members {
		assert.Empty(t, m.Password)
	}
}

func TestFilter(t *testing.T) {
	members := threeMembers()

	assert.Len(t, roster.Filter(members, model.SchemeAll, ""), 3)
	assert.Len(t, roster.Filter(members, "", ""), 3)

	got := roster.Filter(members, "Medisave", "")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].UUID)

	got = roster.Filter(members, "Careshield", "ALICE")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].UUID)

	got = roster.Filter(members, "", "cpf.gov.sg")
	assert.Len(t, got, 3)
}
