package importer_test

import (
	"testing"

	"github.com/flsuite/freelance_ledger_app/internal/core/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntities_FromForProject(t *testing.T) {
	project, client := importer.ExtractEntities("Payment from John D. for project Website Redesign (ref 123)")
	require.NotNil(t, project)
	require.NotNil(t, client)
	assert.Equal(t, "Website Redesign", *project)
	assert.Equal(t, "John D.", *client)
}

func TestExtractEntities_FeeTakenParens(t *testing.T) {
	project, client := importer.ExtractEntities("Project fee taken (Logo Design Pack)")
	require.NotNil(t, project)
	assert.Equal(t, "Logo Design Pack", *project)
	assert.Nil(t, client)
}

func TestExtractEntities_ForProjectWithoutClient(t *testing.T) {
	project, client := importer.ExtractEntities("Invoice for project API Integration (milestone 2)")
	require.NotNil(t, project)
	assert.Equal(t, "API Integration", *project)
	assert.Nil(t, client)
}

func TestExtractEntities_DecodesEntities(t *testing.T) {
	project, client := importer.ExtractEntities("Payment from Smith &amp; Co for project Data &amp; Reports")
	require.NotNil(t, project)
	require.NotNil(t, client)
	assert.Equal(t, "Data & Reports", *project)
	assert.Equal(t, "Smith & Co", *client)
}

func TestExtractEntities_FirstMatchWins(t *testing.T) {
	// Both the "from ... for project" and the bare "for project" pattern
	// would match; only the first in the chain may produce the result.
	project, client := importer.ExtractEntities("Done Milestone Payment from Jane for project CRM Rollout")
	require.NotNil(t, project)
	require.NotNil(t, client)
	assert.Equal(t, "CRM Rollout", *project)
	assert.Equal(t, "Jane", *client)
}

func TestExtractEntities_NoMatch(t *testing.T) {
	project, client := importer.ExtractEntities("Express Withdrawal to bank account")
	assert.Nil(t, project)
	assert.Nil(t, client)
}
