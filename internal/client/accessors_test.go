package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

func TestClient_ModuleAccessors(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, "http://localhost:0")

	tests := []struct {
		name     string
		accessor func() sarvcrm.ModuleClient
		wireName string
	}{
		{"Accounts", c.Accounts, "Accounts"},
		{"Contacts", c.Contacts, "Contacts"},
		{"Leads", c.Leads, "Leads"},
		{"Opportunities", c.Opportunities, "Opportunities"},
		{"Campaigns", c.Campaigns, "Campaigns"},
		{"ScCompetitor", c.ScCompetitor, "sc_competitor"},
		{"Vendors", c.Vendors, "Vendors"},
		{"Branches", c.Branches, "Branches"},
		{"Calls", c.Calls, "Calls"},
		{"Meetings", c.Meetings, "Meetings"},
		{"Tasks", c.Tasks, "Tasks"},
		{"Notes", c.Notes, "Notes"},
		{"Emails", c.Emails, "Emails"},
		{"Appointments", c.Appointments, "Appointments"},
		{"Timesheet", c.Timesheet, "Timesheet"},
		{"Cases", c.Cases, "Cases"},
		{"Bugs", c.Bugs, "Bugs"},
		{"ServiceCenters", c.ServiceCenters, "ServiceCenters"},
		{"KnowledgeBase", c.KnowledgeBase, "KnowledgeBase"},
		{"KnowledgeBaseCategories", c.KnowledgeBaseCategories, "KnowledgeBaseCategories"},
		{"Approval", c.Approval, "Approval"},
		{"AOSInvoices", c.AOSInvoices, "AOS_Invoices"},
		{"AOSQuotes", c.AOSQuotes, "AOS_Quotes"},
		{"Payments", c.Payments, "Payments"},
		{"Deposits", c.Deposits, "Deposits"},
		{"PurchaseOrder", c.PurchaseOrder, "PurchaseOrder"},
		{"AOSContracts", c.AOSContracts, "AOS_Contracts"},
		{"ScContract", c.ScContract, "sc_contract"},
		{"ScContractManagement", c.ScContractManagement, "sc_contract_management"},
		{"AOSPDFTemplates", c.AOSPDFTemplates, "AOS_PDF_Templates"},
		{"AOSProducts", c.AOSProducts, "AOS_Products"},
		{"AOSProductCategories", c.AOSProductCategories, "AOS_Product_Categories"},
		{"Documents", c.Documents, "Documents"},
		{"Communications", c.Communications, "Communications"},
		{"CommunicationsTarget", c.CommunicationsTarget, "CommunicationsTarget"},
		{"CommunicationsTemplate", c.CommunicationsTemplate, "CommunicationsTemplate"},
		{"AsolProject", c.AsolProject, "asol_Project"},
		{"ObjConditions", c.ObjConditions, "obj_Conditions"},
		{"ObjIndicators", c.ObjIndicators, "obj_Indicators"},
		{"ObjObjectives", c.ObjObjectives, "obj_Objectives"},
	}

	assert.Len(t, tests, len(sarvcrm.Modules), "every module needs a typed accessor")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handle := tt.accessor()
			require.NotNil(t, handle)
			assert.Equal(t, tt.wireName, handle.ModuleName())

			registered, err := c.Module(tt.wireName)
			require.NoError(t, err)
			assert.Same(t, handle, registered, "accessor and registry must return the same handle")
		})
	}
}
