package execute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/mockengine"
)

func Test_Execute(t *testing.T) {
	engine, _ := mockengine.New()
	defer engine.Close()

	engine.HandleWith(tdapi.TypeGetTextEntities, &tdapi.TextEntities{
		Entities: []*tdapi.TextEntity{{Offset: 4, Length: 6, Type: &tdapi.TextEntityTypeMention{}}},
	})

	res, err := Do(engine, []string{"getTextEntities", "text=see @durov"})
	require.NoError(t, err)
	assert.Equal(t, tdapi.TypeTextEntities, res.Type)
	assert.Contains(t, string(res.Result), `"textEntityTypeMention"`)

	received := engine.ReceivedTypes()
	assert.Empty(t, received, "executed functions don't go through the transport")
}

func Test_ExecuteRefusesAsync(t *testing.T) {
	engine, _ := mockengine.New()
	defer engine.Close()

	_, err := Do(engine, []string{"getMe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getMe cannot be executed synchronously")
}

func Test_ExecuteEngineError(t *testing.T) {
	engine, _ := mockengine.New()
	defer engine.Close()

	_, err := Do(engine, []string{"getTextEntities", "text=hi"})
	require.Error(t, err)
	assert.True(t, tdapi.IsCode(err, tdapi.CodeBadRequest))

	_, err = Do(engine, []string{"getTextEntities"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid getTextEntities")
}
