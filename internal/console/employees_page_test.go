package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-lite/hrms-go/internal/client"
	"github.com/hrms-lite/hrms-go/internal/console/notify"
)

func TestEmployeesPage_Load(t *testing.T) {
	fail := false
	api := &fakeAPI{listEmployees: func() ([]client.Employee, error) {
		if fail {
			return nil, errBoom
		}
		return sampleEmployees, nil
	}}
	rec := &notify.Recorder{}
	p := NewEmployeesPage(api, rec, AlwaysConfirm, WithLogger(quietLogger()))

	require.NoError(t, p.Load(context.Background()))
	assert.Len(t, p.Employees(), 3)
	assert.Empty(t, rec.All())

	fail = true
	require.Error(t, p.Load(context.Background()))
	assert.Len(t, p.Employees(), 3, "previous list is kept")
	assert.Equal(t, []notify.Notification{notify.Error("Error", "Failed to load employees")}, rec.All())
}

func TestEmployeesPage_Filtered(t *testing.T) {
	api := &fakeAPI{listEmployees: func() ([]client.Employee, error) { return sampleEmployees, nil }}
	p := NewEmployeesPage(api, &notify.Recorder{}, AlwaysConfirm, WithLogger(quietLogger()))
	require.NoError(t, p.Load(context.Background()))
	loads := api.Calls("ListEmployees")

	ids := func() []string {
		var out []string
		for _, e := range p.Filtered() {
			out = append(out, e.EmployeeID)
		}
		return out
	}

	assert.Equal(t, []string{"E001", "E002", "X-RAVI"}, ids())

	p.SetSearch("RAVI")
	assert.Equal(t, []string{"E002", "X-RAVI"}, ids(), "name is case-insensitive, id is case-sensitive")

	p.SetSearch("ravi")
	assert.Equal(t, []string{"E002"}, ids())

	p.SetSearch("E00")
	assert.Equal(t, []string{"E001", "E002"}, ids())

	p.SetSearch("e00")
	assert.Empty(t, ids())

	p.SetSearch("")
	assert.Len(t, ids(), 3)
	assert.Equal(t, loads, api.Calls("ListEmployees"), "search never refetches")
}

func TestEmployeesPage_FormAndListRefresh(t *testing.T) {
	api := &fakeAPI{listEmployees: func() ([]client.Employee, error) { return sampleEmployees, nil }}
	p := NewEmployeesPage(api, &notify.Recorder{}, AlwaysConfirm, WithLogger(quietLogger()))
	ctx := context.Background()

	fillForm(p.Form, "E004", "Nikhil", "nikhil@corp.io", "Sales")
	require.NoError(t, p.Form.Submit(ctx))
	assert.Equal(t, 1, api.Calls("ListEmployees"))

	emp, ok := p.Find(2)
	require.True(t, ok)
	assert.True(t, p.List.Remove(ctx, emp))
	assert.Equal(t, 2, api.Calls("ListEmployees"))

	_, ok = p.Find(99)
	assert.False(t, ok)
}
