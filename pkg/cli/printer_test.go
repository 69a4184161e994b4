package cli_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/userform/pkg/cli"
	"github.com/secmon-lab/userform/pkg/domain/model"
)

func TestPrintOutcome(t *testing.T) {
	testCases := []struct {
		name string
		form model.UserForm
		want string
	}{
		{
			name: "valid form",
			form: model.UserForm{UserName: "Richard", Password: "S@@agie!", Age: 45},
			want: "Getting a fully validated User: User(userName=Richard, age=45)",
		},
		{
			name: "two failures",
			form: model.UserForm{UserName: "a", Password: "password", Age: 30},
			want: "There were errors validating the UserForm:[Name is too short, Password is not strong enough]",
		},
		{
			name: "all failures",
			form: model.UserForm{UserName: "", Password: "", Age: 17},
			want: "There were errors validating the UserForm:[Name is too short, Password is not strong enough, User should be older than 18]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			gt.NoError(t, cli.PrintOutcome(&buf, model.ValidateForm(tc.form))).Required()
			gt.String(t, buf.String()).Contains(tc.want)
		})
	}
}

func TestPrintOutcome_HidesPassword(t *testing.T) {
	var buf bytes.Buffer
	outcome := model.ValidateForm(model.UserForm{UserName: "Richard", Password: "S@@agie!", Age: 45})
	gt.NoError(t, cli.PrintOutcome(&buf, outcome)).Required()
	gt.Bool(t, bytes.Contains(buf.Bytes(), []byte("S@@agie!"))).False()
}
