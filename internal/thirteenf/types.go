package thirteenf

// Document is the 13F-HR primary document (edgarSubmission).
type Document struct {
	SchemaVersion *string     `json:"schema_version" edgar:"schemaVersion"`
	HeaderData    *HeaderData `json:"header_data" edgar:"headerData,required"`
	FormData      *FormData   `json:"form_data" edgar:"formData,required"`
}

type HeaderData struct {
	SubmissionType *string    `json:"submission_type" edgar:"submissionType,required"`
	FilerInfo      *FilerInfo `json:"filer_info" edgar:"filerInfo,required"`
}

type FilerInfo struct {
	LiveTestFlag   *string        `json:"live_test_flag" edgar:"liveTestFlag,required"`
	Flags          *Flags         `json:"flags" edgar:"flags"`
	Filer          *Filer         `json:"filer" edgar:"filer,required"`
	Contact        *Contact       `json:"contact" edgar:"contact"`
	Notifications  *Notifications `json:"notifications" edgar:"notifications"`
	PeriodOfReport *string        `json:"period_of_report" edgar:"periodOfReport,required"`
}

type Flags struct {
	ConfirmingCopyFlag   *bool `json:"confirming_copy_flag" edgar:"confirmingCopyFlag"`
	ReturnCopyFlag       *bool `json:"return_copy_flag" edgar:"returnCopyFlag"`
	OverrideInternetFlag *bool `json:"override_internet_flag" edgar:"overrideInternetFlag"`
}

type Filer struct {
	Credentials *Credentials `json:"credentials" edgar:"credentials,required"`
	FileNumber  *string      `json:"file_number" edgar:"fileNumber"`
}

type Credentials struct {
	CIK *string `json:"cik" edgar:"cik,required"`
	CCC *string `json:"ccc" edgar:"ccc,required"`
}

type Contact struct {
	Name         *string `json:"name" edgar:"name"`
	PhoneNumber  *string `json:"phone_number" edgar:"phoneNumber"`
	EmailAddress *string `json:"email_address" edgar:"emailAddress"`
}

type Notifications struct {
	EmailAddress *string `json:"email_address" edgar:"emailAddress"`
}

type FormData struct {
	CoverPage      *CoverPage      `json:"cover_page" edgar:"coverPage,required"`
	SignatureBlock *SignatureBlock `json:"signature_block" edgar:"signatureBlock,required"`
	SummaryPage    *SummaryPage    `json:"summary_page" edgar:"summaryPage"`
	Documents      []OtherDocument `json:"documents" edgar:"documents>document"`
}

type CoverPage struct {
	ReportCalendarOrQuarter    *string        `json:"report_calendar_or_quarter" edgar:"reportCalendarOrQuarter,required"`
	IsAmendment                *bool          `json:"is_amendment" edgar:"isAmendment"`
	AmendmentNumber            *int64         `json:"amendment_number" edgar:"amendmentNumber"`
	AmendmentInfo              *AmendmentInfo `json:"amendment_info" edgar:"amendmentInfo"`
	FilingManager              *FilingManager `json:"filing_manager" edgar:"filingManager,required"`
	ReportType                 *string        `json:"report_type" edgar:"reportType,required"`
	Form13FFileNumber          *string        `json:"form_13f_file_number" edgar:"form13FFileNumber"`
	CRDNumber                  *string        `json:"crd_number" edgar:"crdNumber"`
	SECFileNumber              *string        `json:"sec_file_number" edgar:"secFileNumber"`
	OtherManagers              []OtherManager `json:"other_managers" edgar:"otherManagersInfo>otherManager"`
	ProvideInfoForInstruction5 *bool          `json:"provide_info_for_instruction_5" edgar:"provideInfoForInstruction5,required"`
	AdditionalInformation      *string        `json:"additional_information" edgar:"additionalInformation"`
}

type AmendmentInfo struct {
	AmendmentType               *string `json:"amendment_type" edgar:"amendmentType"`
	ConfDeniedExpired           *bool   `json:"conf_denied_expired" edgar:"confDeniedExpired"`
	DateDeniedExpired           *string `json:"date_denied_expired" edgar:"dateDeniedExpired"`
	DateReported                *string `json:"date_reported" edgar:"dateReported"`
	ReasonForNonConfidentiality *string `json:"reason_for_non_confidentiality" edgar:"reasonForNonConfidentiality"`
}

type FilingManager struct {
	Name    *string  `json:"name" edgar:"name,required"`
	Address *Address `json:"address" edgar:"address,required"`
}

type Address struct {
	Street1        *string `json:"street1" edgar:"street1,required"`
	Street2        *string `json:"street2" edgar:"street2"`
	City           *string `json:"city" edgar:"city,required"`
	StateOrCountry *string `json:"state_or_country" edgar:"stateOrCountry,required"`
	ZipCode        *string `json:"zip_code" edgar:"zipCode,required"`
}

type OtherManager struct {
	CIK               *string `json:"cik" edgar:"cik"`
	Name              *string `json:"name" edgar:"name"`
	Form13FFileNumber *string `json:"form_13f_file_number" edgar:"form13FFileNumber"`
	CRDNumber         *string `json:"crd_number" edgar:"crdNumber"`
	SECFileNumber     *string `json:"sec_file_number" edgar:"secFileNumber"`
}

type SignatureBlock struct {
	Name           *string `json:"name" edgar:"name,required"`
	Title          *string `json:"title" edgar:"title,required"`
	Phone          *string `json:"phone" edgar:"phone,required"`
	Signature      *string `json:"signature" edgar:"signature,required"`
	City           *string `json:"city" edgar:"city,required"`
	StateOrCountry *string `json:"state_or_country" edgar:"stateOrCountry,required"`
	SignatureDate  *string `json:"signature_date" edgar:"signatureDate,required"`
}

type SummaryPage struct {
	OtherIncludedManagersCount *int64                     `json:"other_included_managers_count" edgar:"otherIncludedManagersCount,required"`
	TableEntryTotal            *int64                     `json:"table_entry_total" edgar:"tableEntryTotal,required"`
	TableValueTotal            *int64                     `json:"table_value_total" edgar:"tableValueTotal,required"`
	IsConfidentialOmitted      *bool                      `json:"is_confidential_omitted" edgar:"isConfidentialOmitted"`
	OtherManagers              []OtherManagerWithSequence `json:"other_managers" edgar:"otherManagers2Info>otherManager2"`
}

type OtherManagerWithSequence struct {
	SequenceNumber *int64        `json:"sequence_number" edgar:"sequenceNumber"`
	Manager        *OtherManager `json:"manager" edgar:"otherManager"`
}

type OtherDocument struct {
	ConformedName         *string `json:"conformed_name" edgar:"conformedName"`
	ConformedDocumentType *string `json:"conformed_document_type" edgar:"conformedDocumentType"`
	Description           *string `json:"description" edgar:"description"`
	Contents              *string `json:"contents" edgar:"contents"`
}

// Table is the information table listing every reported position.
type Table struct {
	Entries []TableEntry `json:"entries" edgar:"infoTable"`
}

type TableEntry struct {
	NameOfIssuer         *string            `json:"name_of_issuer" edgar:"nameOfIssuer,required"`
	TitleOfClass         *string            `json:"title_of_class" edgar:"titleOfClass,required"`
	CUSIP                *string            `json:"cusip" edgar:"cusip,required"`
	FIGI                 *string            `json:"figi" edgar:"figi"`
	Value                *int64             `json:"value" edgar:"value,required"`
	SharesOrPrincipal    *SharesOrPrincipal `json:"shrs_or_prn_amt" edgar:"shrsOrPrnAmt,required"`
	PutCall              *string            `json:"put_call" edgar:"putCall"`
	InvestmentDiscretion *string            `json:"investment_discretion" edgar:"investmentDiscretion,required"`
	OtherManager         []int64            `json:"other_manager" edgar:"otherManager"`
	VotingAuthority      *VotingAuthority   `json:"voting_authority" edgar:"votingAuthority,required"`
}

type SharesOrPrincipal struct {
	Amount *int64  `json:"amount" edgar:"sshPrnamt,required"`
	Type   *string `json:"type" edgar:"sshPrnamtType,required"`
}

type VotingAuthority struct {
	Sole   *int64 `json:"sole" edgar:"Sole,required"`
	Shared *int64 `json:"shared" edgar:"Shared,required"`
	None   *int64 `json:"none" edgar:"None,required"`
}
