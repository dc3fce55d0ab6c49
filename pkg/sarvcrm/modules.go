package sarvcrm

// ModuleDescriptor is the static identity of one CRM module: its wire name
// plus the English and Persian display labels. Descriptors carry no
// behavior; all modules share the same operation set.
type ModuleDescriptor struct {
	Name    string `json:"name"     yaml:"name"`
	LabelEN string `json:"label_en" yaml:"label_en"`
	LabelFA string `json:"label_fa" yaml:"label_fa"`
}

// ModuleName returns the wire name, satisfying ModuleNamer.
func (d ModuleDescriptor) ModuleName() string {
	return d.Name
}

// String returns the wire name.
func (d ModuleDescriptor) String() string {
	return d.Name
}

// Modules lists every module the CRM exposes, in accessor order. The table
// is configuration data: entries follow the server's SuiteCRM-derived
// naming and never change at runtime.
var Modules = []ModuleDescriptor{
	{Name: "Accounts", LabelEN: "Accounts", LabelFA: "حساب‌ها"},
	{Name: "AOS_Contracts", LabelEN: "Contracts", LabelFA: "قراردادها"},
	{Name: "AOS_Invoices", LabelEN: "Invoices", LabelFA: "فاکتورها"},
	{Name: "AOS_PDF_Templates", LabelEN: "PDF Templates", LabelFA: "قالب‌های PDF"},
	{Name: "AOS_Product_Categories", LabelEN: "Product Categories", LabelFA: "دسته‌بندی محصولات"},
	{Name: "AOS_Products", LabelEN: "Products", LabelFA: "محصولات"},
	{Name: "AOS_Quotes", LabelEN: "Quotes", LabelFA: "پیش‌فاکتورها"},
	{Name: "Appointments", LabelEN: "Appointments", LabelFA: "قرار ملاقات‌ها"},
	{Name: "Approval", LabelEN: "Approvals", LabelFA: "تاییدیه‌ها"},
	{Name: "asol_Project", LabelEN: "Projects", LabelFA: "پروژه‌ها"},
	{Name: "Branches", LabelEN: "Branches", LabelFA: "شعبه‌ها"},
	{Name: "Bugs", LabelEN: "Bugs", LabelFA: "اشکالات"},
	{Name: "Calls", LabelEN: "Calls", LabelFA: "تماس‌ها"},
	{Name: "Cases", LabelEN: "Cases", LabelFA: "درخواست‌ها"},
	{Name: "Communications", LabelEN: "Communications", LabelFA: "ارتباطات"},
	{Name: "CommunicationsTarget", LabelEN: "Communication Targets", LabelFA: "اهداف ارتباط"},
	{Name: "CommunicationsTemplate", LabelEN: "Communication Templates", LabelFA: "قالب‌های ارتباط"},
	{Name: "Campaigns", LabelEN: "Campaigns", LabelFA: "کمپین‌ها"},
	{Name: "Contacts", LabelEN: "Contacts", LabelFA: "افراد"},
	{Name: "Deposits", LabelEN: "Deposits", LabelFA: "واریزی‌ها"},
	{Name: "Documents", LabelEN: "Documents", LabelFA: "اسناد"},
	{Name: "Emails", LabelEN: "Emails", LabelFA: "ایمیل‌ها"},
	{Name: "KnowledgeBase", LabelEN: "Knowledge Base", LabelFA: "پایگاه دانش"},
	{Name: "KnowledgeBaseCategories", LabelEN: "Knowledge Base Categories", LabelFA: "دسته‌بندی پایگاه دانش"},
	{Name: "Leads", LabelEN: "Leads", LabelFA: "سرنخ‌ها"},
	{Name: "Meetings", LabelEN: "Meetings", LabelFA: "جلسات"},
	{Name: "Notes", LabelEN: "Notes", LabelFA: "یادداشت‌ها"},
	{Name: "obj_Conditions", LabelEN: "Conditions", LabelFA: "شرایط"},
	{Name: "obj_Indicators", LabelEN: "Indicators", LabelFA: "شاخص‌ها"},
	{Name: "obj_Objectives", LabelEN: "Objectives", LabelFA: "اهداف"},
	{Name: "Opportunities", LabelEN: "Opportunities", LabelFA: "فرصت‌ها"},
	{Name: "Payments", LabelEN: "Payments", LabelFA: "پرداخت‌ها"},
	{Name: "PurchaseOrder", LabelEN: "Purchase Orders", LabelFA: "سفارش‌های خرید"},
	{Name: "sc_competitor", LabelEN: "Competitors", LabelFA: "رقبا"},
	{Name: "sc_contract", LabelEN: "Service Contracts", LabelFA: "قراردادهای خدمات"},
	{Name: "sc_contract_management", LabelEN: "Contract Management", LabelFA: "مدیریت قراردادها"},
	{Name: "ServiceCenters", LabelEN: "Service Centers", LabelFA: "مراکز خدمات"},
	{Name: "Tasks", LabelEN: "Tasks", LabelFA: "وظایف"},
	{Name: "Timesheet", LabelEN: "Timesheets", LabelFA: "کارکرد"},
	{Name: "Vendors", LabelEN: "Vendors", LabelFA: "تامین‌کنندگان"},
}

// FindModule looks up a descriptor by wire name.
func FindModule(name string) (ModuleDescriptor, bool) {
	for _, descriptor := range Modules {
		if descriptor.Name == name {
			return descriptor, true
		}
	}

	return ModuleDescriptor{}, false
}
