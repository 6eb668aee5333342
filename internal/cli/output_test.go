package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/validation"
)

func newTestFormatter(jsonOutput, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func decodeError(t *testing.T, out *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	return result["error"].(map[string]interface{})
}

func TestFail_IntegritySuggestion(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	cause := fmt.Errorf("failed to delete department: %w", database.ErrIntegrity)

	err := f.Fail(cause)
	require.Error(t, err)
	assert.True(t, Reported(err))
	assert.ErrorIs(t, err, database.ErrIntegrity)
	assert.Equal(t, ExitIntegrity, ExitCodeFor(err))

	errData := decodeError(t, out)
	assert.Equal(t, "INTEGRITY_ERROR", errData["code"])
	assert.Equal(t, "move or delete the sellers of this department first", errData["suggestion"])
}

func TestFail_NotFoundHumanOutput(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	_ = f.Fail(fmt.Errorf("seller 9: %w", database.ErrNotFound))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "❌ Error: seller 9: record not found")
	assert.Contains(t, errOut.String(), "💡 Suggestion: run the list command to see the existing IDs")
}

func TestFail_ValidationFields(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	vErr := validation.NewError("Validation error")
	vErr.AddError("name", validation.MsgRequired)

	err := f.Fail(vErr)
	assert.Equal(t, ExitValidation, ExitCodeFor(err))

	errData := decodeError(t, out)
	assert.Equal(t, "VALIDATION_ERROR", errData["code"])
	assert.NotContains(t, errData, "suggestion")
	assert.Equal(t, map[string]interface{}{"name": validation.MsgRequired}, errData["fields"])
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitGeneral, ExitCodeFor(errors.New("disk full")))
	assert.Equal(t, ExitUsage, ExitCodeFor(Exit(ExitUsage, errors.New("bad flag"))))
	assert.Equal(t, "ERROR", ErrorCode(errors.New("disk full")))
}

func TestSuccess_QuietPrintsID(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	require.NoError(t, f.Success(idOnly(12), "ignored"))
	assert.Equal(t, "12\n", out.String())
}

type idOnly int

func (i idOnly) GetID() int { return int(i) }
