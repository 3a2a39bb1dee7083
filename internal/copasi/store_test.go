package copasi

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomodelkit/mex/internal/model"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<COPASI version="1">
  <Model key="Model_1" name="toy" quantityUnit="mmol" timeUnit="s" volumeUnit="ml" areaUnit="m2" lengthUnit="m">
    <Notes>seed notes</Notes>
    <MiriamAnnotation created="2024-03-01T12:00:00Z">
      <Description>a toy model</Description>
      <ListOfCreators>
        <Creator givenName="Jane" familyName="Doe" email="jane@example.org"></Creator>
      </ListOfCreators>
      <ListOfModifications>
        <Modification id="x" date="2024-04-01T08:30:00Z"></Modification>
      </ListOfModifications>
    </MiriamAnnotation>
    <ListOfCompartments>
      <Compartment key="Compartment_1" name="cell" type="fixed" size="1" dimensionality="3"></Compartment>
    </ListOfCompartments>
    <ListOfSpecies>
      <Species key="Metabolite_1" name="Glc" compartment="cell" type="reactions" initialConcentration="10"></Species>
      <Species key="Metabolite_2" name="Pyr" compartment="cell" type="reactions" initialConcentration="0">
        <InitialExpression>2*[Glc]</InitialExpression>
      </Species>
    </ListOfSpecies>
    <ListOfParameters>
      <Parameter key="ModelValue_1" name="k1" type="fixed" initialValue="0.5" unit="1/s"></Parameter>
      <Parameter key="ModelValue_2" name="Vmax" type="assignment" initialValue="0">
        <Expression>[Glc]+(k1)</Expression>
      </Parameter>
    </ListOfParameters>
    <ListOfReactions>
      <Reaction key="Reaction_1" name="R1" function="mass action">
        <Scheme>Glc -&gt; Pyr</Scheme>
        <ListOfMappings>
          <Mapping parameter="k"><Target>k1</Target></Mapping>
          <Mapping parameter="sub" multi="true"><Target>Glc</Target><Target>Glc</Target></Mapping>
        </ListOfMappings>
      </Reaction>
    </ListOfReactions>
    <ListOfEvents>
      <Event key="Event_1" name="deplete">
        <Trigger>[Glc] &lt; 0.1</Trigger>
        <ListOfAssignments>
          <Assignment target="k1"><Expression>0</Expression></Assignment>
        </ListOfAssignments>
      </Event>
    </ListOfEvents>
  </Model>
</COPASI>
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toy.cps")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeFixture(t))
	require.NoError(t, err)

	assert.Equal(t, "toy", m.Name())
	assert.Equal(t, "seed notes", m.Notes())
	assert.Equal(t, model.Units{Quantity: "mmol", Time: "s", Volume: "ml", Area: "m2", Length: "m"}, m.Units())

	require.Len(t, m.Compartments(), 1)
	assert.Equal(t, 3, m.Compartments()[0].Dimensionality)

	require.Len(t, m.Species(), 2)
	assert.Equal(t, "2*[Glc]", m.Species()[1].InitialExpression)

	require.Len(t, m.Parameters(), 2)
	vmax := m.Parameters()[1]
	assert.Equal(t, model.Assignment, vmax.Type)
	assert.Equal(t, "[Glc]+(k1)", vmax.Expression)

	require.Len(t, m.Reactions(), 1)
	r := m.Reactions()[0]
	assert.Equal(t, "Glc -> Pyr", r.Scheme)
	assert.Equal(t, "mass action", r.Function)
	assert.Equal(t, []string{"k1"}, r.Mapping["k"].Names())
	assert.True(t, r.Mapping["sub"].IsMulti())
	assert.Equal(t, []string{"Glc", "Glc"}, r.Mapping["sub"].Names())

	require.Len(t, m.Events(), 1)
	assert.Equal(t, "[Glc] < 0.1", m.Events()[0].Trigger)

	miriam := m.Miriam()
	assert.Equal(t, "a toy model", miriam.Description)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), miriam.Created)
	require.Len(t, miriam.Creators, 1)
	assert.Equal(t, "Doe", miriam.Creators[0].FamilyName)
	require.Len(t, miriam.Modifications, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.cps"))
	assert.Error(t, err)
}

func TestLoadRejectsDanglingReferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cps")
	bad := `<?xml version="1.0"?>
<COPASI version="1">
  <Model name="bad" quantityUnit="mmol" timeUnit="s" volumeUnit="ml" areaUnit="m2" lengthUnit="m">
    <ListOfSpecies>
      <Species name="A" compartment="nowhere" type="reactions" initialConcentration="1"></Species>
    </ListOfSpecies>
  </Model>
</COPASI>`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, model.ErrUnknownElement)
}

func TestSaveRoundTrip(t *testing.T) {
	m, err := Load(writeFixture(t))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "roundtrip.cps")
	require.NoError(t, Save(out, m))

	got, err := Load(out)
	require.NoError(t, err)

	assert.Equal(t, m.Name(), got.Name())
	assert.Equal(t, m.Notes(), got.Notes())
	assert.Equal(t, m.Units(), got.Units())
	assert.Equal(t, m.Compartments(), got.Compartments())
	assert.Equal(t, m.Species(), got.Species())
	assert.Equal(t, m.Parameters(), got.Parameters())
	assert.Equal(t, m.Reactions(), got.Reactions())
	assert.Equal(t, m.Events(), got.Events())
	assert.Equal(t, m.Miriam().Description, got.Miriam().Description)
	assert.Equal(t, len(m.Miriam().Modifications), len(got.Miriam().Modifications))
}
