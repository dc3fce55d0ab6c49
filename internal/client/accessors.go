package client

import "github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"

// Typed module accessors. Each returns the registry handle for one wire
// name; the names mirror the module table in pkg/sarvcrm.

// Accounts implements sarvcrm.SalesModules.Accounts.
func (c *Client) Accounts() sarvcrm.ModuleClient {
	return c.handles["Accounts"]
}

// Contacts implements sarvcrm.SalesModules.Contacts.
func (c *Client) Contacts() sarvcrm.ModuleClient {
	return c.handles["Contacts"]
}

// Leads implements sarvcrm.SalesModules.Leads.
func (c *Client) Leads() sarvcrm.ModuleClient {
	return c.handles["Leads"]
}

// Opportunities implements sarvcrm.SalesModules.Opportunities.
func (c *Client) Opportunities() sarvcrm.ModuleClient {
	return c.handles["Opportunities"]
}

// Campaigns implements sarvcrm.SalesModules.Campaigns.
func (c *Client) Campaigns() sarvcrm.ModuleClient {
	return c.handles["Campaigns"]
}

// ScCompetitor implements sarvcrm.SalesModules.ScCompetitor.
func (c *Client) ScCompetitor() sarvcrm.ModuleClient {
	return c.handles["sc_competitor"]
}

// Vendors implements sarvcrm.SalesModules.Vendors.
func (c *Client) Vendors() sarvcrm.ModuleClient {
	return c.handles["Vendors"]
}

// Branches implements sarvcrm.SalesModules.Branches.
func (c *Client) Branches() sarvcrm.ModuleClient {
	return c.handles["Branches"]
}

// Calls implements sarvcrm.ActivityModules.Calls.
func (c *Client) Calls() sarvcrm.ModuleClient {
	return c.handles["Calls"]
}

// Meetings implements sarvcrm.ActivityModules.Meetings.
func (c *Client) Meetings() sarvcrm.ModuleClient {
	return c.handles["Meetings"]
}

// Tasks implements sarvcrm.ActivityModules.Tasks.
func (c *Client) Tasks() sarvcrm.ModuleClient {
	return c.handles["Tasks"]
}

// Notes implements sarvcrm.ActivityModules.Notes.
func (c *Client) Notes() sarvcrm.ModuleClient {
	return c.handles["Notes"]
}

// Emails implements sarvcrm.ActivityModules.Emails.
func (c *Client) Emails() sarvcrm.ModuleClient {
	return c.handles["Emails"]
}

// Appointments implements sarvcrm.ActivityModules.Appointments.
func (c *Client) Appointments() sarvcrm.ModuleClient {
	return c.handles["Appointments"]
}

// Timesheet implements sarvcrm.ActivityModules.Timesheet.
func (c *Client) Timesheet() sarvcrm.ModuleClient {
	return c.handles["Timesheet"]
}

// Cases implements sarvcrm.SupportModules.Cases.
func (c *Client) Cases() sarvcrm.ModuleClient {
	return c.handles["Cases"]
}

// Bugs implements sarvcrm.SupportModules.Bugs.
func (c *Client) Bugs() sarvcrm.ModuleClient {
	return c.handles["Bugs"]
}

// ServiceCenters implements sarvcrm.SupportModules.ServiceCenters.
func (c *Client) ServiceCenters() sarvcrm.ModuleClient {
	return c.handles["ServiceCenters"]
}

// KnowledgeBase implements sarvcrm.SupportModules.KnowledgeBase.
func (c *Client) KnowledgeBase() sarvcrm.ModuleClient {
	return c.handles["KnowledgeBase"]
}

// KnowledgeBaseCategories implements sarvcrm.SupportModules.KnowledgeBaseCategories.
func (c *Client) KnowledgeBaseCategories() sarvcrm.ModuleClient {
	return c.handles["KnowledgeBaseCategories"]
}

// Approval implements sarvcrm.SupportModules.Approval.
func (c *Client) Approval() sarvcrm.ModuleClient {
	return c.handles["Approval"]
}

// AOSInvoices implements sarvcrm.FinanceModules.AOSInvoices.
func (c *Client) AOSInvoices() sarvcrm.ModuleClient {
	return c.handles["AOS_Invoices"]
}

// AOSQuotes implements sarvcrm.FinanceModules.AOSQuotes.
func (c *Client) AOSQuotes() sarvcrm.ModuleClient {
	return c.handles["AOS_Quotes"]
}

// Payments implements sarvcrm.FinanceModules.Payments.
func (c *Client) Payments() sarvcrm.ModuleClient {
	return c.handles["Payments"]
}

// Deposits implements sarvcrm.FinanceModules.Deposits.
func (c *Client) Deposits() sarvcrm.ModuleClient {
	return c.handles["Deposits"]
}

// PurchaseOrder implements sarvcrm.FinanceModules.PurchaseOrder.
func (c *Client) PurchaseOrder() sarvcrm.ModuleClient {
	return c.handles["PurchaseOrder"]
}

// AOSContracts implements sarvcrm.ContractModules.AOSContracts.
func (c *Client) AOSContracts() sarvcrm.ModuleClient {
	return c.handles["AOS_Contracts"]
}

// ScContract implements sarvcrm.ContractModules.ScContract.
func (c *Client) ScContract() sarvcrm.ModuleClient {
	return c.handles["sc_contract"]
}

// ScContractManagement implements sarvcrm.ContractModules.ScContractManagement.
func (c *Client) ScContractManagement() sarvcrm.ModuleClient {
	return c.handles["sc_contract_management"]
}

// AOSPDFTemplates implements sarvcrm.ContractModules.AOSPDFTemplates.
func (c *Client) AOSPDFTemplates() sarvcrm.ModuleClient {
	return c.handles["AOS_PDF_Templates"]
}

// AOSProducts implements sarvcrm.CatalogModules.AOSProducts.
func (c *Client) AOSProducts() sarvcrm.ModuleClient {
	return c.handles["AOS_Products"]
}

// AOSProductCategories implements sarvcrm.CatalogModules.AOSProductCategories.
func (c *Client) AOSProductCategories() sarvcrm.ModuleClient {
	return c.handles["AOS_Product_Categories"]
}

// Documents implements sarvcrm.CatalogModules.Documents.
func (c *Client) Documents() sarvcrm.ModuleClient {
	return c.handles["Documents"]
}

// Communications implements sarvcrm.OutreachModules.Communications.
func (c *Client) Communications() sarvcrm.ModuleClient {
	return c.handles["Communications"]
}

// CommunicationsTarget implements sarvcrm.OutreachModules.CommunicationsTarget.
func (c *Client) CommunicationsTarget() sarvcrm.ModuleClient {
	return c.handles["CommunicationsTarget"]
}

// CommunicationsTemplate implements sarvcrm.OutreachModules.CommunicationsTemplate.
func (c *Client) CommunicationsTemplate() sarvcrm.ModuleClient {
	return c.handles["CommunicationsTemplate"]
}

// AsolProject implements sarvcrm.ObjectiveModules.AsolProject.
func (c *Client) AsolProject() sarvcrm.ModuleClient {
	return c.handles["asol_Project"]
}

// ObjConditions implements sarvcrm.ObjectiveModules.ObjConditions.
func (c *Client) ObjConditions() sarvcrm.ModuleClient {
	return c.handles["obj_Conditions"]
}

// ObjIndicators implements sarvcrm.ObjectiveModules.ObjIndicators.
func (c *Client) ObjIndicators() sarvcrm.ModuleClient {
	return c.handles["obj_Indicators"]
}

// ObjObjectives implements sarvcrm.ObjectiveModules.ObjObjectives.
func (c *Client) ObjObjectives() sarvcrm.ModuleClient {
	return c.handles["obj_Objectives"]
}
