package ownership

import "github.com/dgallion1/edgarparse/internal/schema"

// VF is the value+footnote leaf used throughout the ownership schema.
type VF = schema.ValueFootnote

// Document is an ownershipDocument (Forms 3, 4 and 5 and their amendments).
type Document struct {
	SchemaVersion             *string             `json:"schema_version" edgar:"schemaVersion"`
	DocumentType              *string             `json:"document_type" edgar:"documentType,required"`
	PeriodOfReport            *string             `json:"period_of_report" edgar:"periodOfReport,required"`
	DateOfOriginalSubmission  *string             `json:"date_of_original_submission" edgar:"dateOfOriginalSubmission"`
	NoSecuritiesOwned         *bool               `json:"no_securities_owned" edgar:"noSecuritiesOwned"`
	NotSubjectToSection16     *bool               `json:"not_subject_to_section_16" edgar:"notSubjectToSection16"`
	Form3HoldingsReported     *bool               `json:"form3_holdings_reported" edgar:"form3HoldingsReported"`
	Form4TransactionsReported *bool               `json:"form4_transactions_reported" edgar:"form4TransactionsReported"`
	Issuer                    *Issuer             `json:"issuer" edgar:"issuer,required"`
	ReportingOwner            *ReportingOwner     `json:"reporting_owner" edgar:"reportingOwner,required"`
	Aff10b5One                *bool               `json:"aff10b5_one" edgar:"aff10b5One"`
	NonDerivativeTable        *NonDerivativeTable `json:"non_derivative_table" edgar:"nonDerivativeTable"`
	DerivativeTable           *DerivativeTable    `json:"derivative_table" edgar:"derivativeTable"`
	Footnotes                 []Footnote          `json:"footnotes" edgar:"footnotes>footnote"`
	Remarks                   *string             `json:"remarks" edgar:"remarks"`
	OwnerSignature            *OwnerSignature     `json:"owner_signature" edgar:"ownerSignature,required"`
}

type Issuer struct {
	CIK           *string `json:"cik" edgar:"issuerCik,required"`
	Name          *string `json:"name" edgar:"issuerName,required"`
	TradingSymbol *string `json:"trading_symbol" edgar:"issuerTradingSymbol,required"`
}

type ReportingOwner struct {
	ID           *ReportingOwnerID           `json:"id" edgar:"reportingOwnerId,required"`
	Address      *ReportingOwnerAddress      `json:"address" edgar:"reportingOwnerAddress"`
	Relationship *ReportingOwnerRelationship `json:"relationship" edgar:"reportingOwnerRelationship,required"`
}

type ReportingOwnerID struct {
	CIK  *string `json:"cik" edgar:"rptOwnerCik,required"`
	CCC  *string `json:"ccc" edgar:"rptOwnerCcc"`
	Name *string `json:"name" edgar:"rptOwnerName"`
}

type ReportingOwnerAddress struct {
	Street1          *string `json:"street1" edgar:"rptOwnerStreet1"`
	Street2          *string `json:"street2" edgar:"rptOwnerStreet2"`
	City             *string `json:"city" edgar:"rptOwnerCity"`
	State            *string `json:"state" edgar:"rptOwnerState"`
	ZipCode          *string `json:"zip_code" edgar:"rptOwnerZipCode"`
	StateDescription *string `json:"state_description" edgar:"rptOwnerStateDescription"`
}

type ReportingOwnerRelationship struct {
	IsDirector        *bool   `json:"is_director" edgar:"isDirector"`
	IsOfficer         *bool   `json:"is_officer" edgar:"isOfficer"`
	IsTenPercentOwner *bool   `json:"is_ten_percent_owner" edgar:"isTenPercentOwner"`
	IsOther           *bool   `json:"is_other" edgar:"isOther"`
	OfficerTitle      *string `json:"officer_title" edgar:"officerTitle"`
	OtherText         *string `json:"other_text" edgar:"otherText"`
}

type NonDerivativeTable struct {
	Transactions []NonDerivativeTransaction `json:"transactions" edgar:"nonDerivativeTransaction"`
	Holdings     []NonDerivativeHolding     `json:"holdings" edgar:"nonDerivativeHolding"`
}

type DerivativeTable struct {
	Transactions []DerivativeTransaction `json:"transactions" edgar:"derivativeTransaction"`
	Holdings     []DerivativeHolding     `json:"holdings" edgar:"derivativeHolding"`
}

type NonDerivativeTransaction struct {
	SecurityTitle          *VF                     `json:"security_title" edgar:"securityTitle,required"`
	TransactionDate        *VF                     `json:"transaction_date" edgar:"transactionDate,required"`
	DeemedExecutionDate    *VF                     `json:"deemed_execution_date" edgar:"deemedExecutionDate"`
	TransactionCoding      *TransactionCoding      `json:"transaction_coding" edgar:"transactionCoding,required"`
	TransactionTimeliness  *VF                     `json:"transaction_timeliness" edgar:"transactionTimeliness"`
	TransactionAmounts     *TransactionAmounts     `json:"transaction_amounts" edgar:"transactionAmounts,required"`
	PostTransactionAmounts *PostTransactionAmounts `json:"post_transaction_amounts" edgar:"postTransactionAmounts,required"`
	OwnershipNature        *OwnershipNature        `json:"ownership_nature" edgar:"ownershipNature,required"`
}

type DerivativeTransaction struct {
	SecurityTitle             *VF                           `json:"security_title" edgar:"securityTitle,required"`
	ConversionOrExercisePrice *VF                           `json:"conversion_or_exercise_price" edgar:"conversionOrExercisePrice,required"`
	TransactionDate           *VF                           `json:"transaction_date" edgar:"transactionDate,required"`
	DeemedExecutionDate       *VF                           `json:"deemed_execution_date" edgar:"deemedExecutionDate"`
	TransactionCoding         *TransactionCoding            `json:"transaction_coding" edgar:"transactionCoding,required"`
	TransactionTimeliness     *VF                           `json:"transaction_timeliness" edgar:"transactionTimeliness"`
	TransactionAmounts        *DerivativeTransactionAmounts `json:"transaction_amounts" edgar:"transactionAmounts,required"`
	ExerciseDate              *VF                           `json:"exercise_date" edgar:"exerciseDate,required"`
	ExpirationDate            *VF                           `json:"expiration_date" edgar:"expirationDate,required"`
	UnderlyingSecurity        *UnderlyingSecurity           `json:"underlying_security" edgar:"underlyingSecurity,required"`
	PostTransactionAmounts    *PostTransactionAmounts       `json:"post_transaction_amounts" edgar:"postTransactionAmounts,required"`
	OwnershipNature           *OwnershipNature              `json:"ownership_nature" edgar:"ownershipNature,required"`
}

type NonDerivativeHolding struct {
	SecurityTitle          *VF                     `json:"security_title" edgar:"securityTitle,required"`
	TransactionCoding      *HoldingCoding          `json:"transaction_coding" edgar:"transactionCoding"`
	PostTransactionAmounts *PostTransactionAmounts `json:"post_transaction_amounts" edgar:"postTransactionAmounts,required"`
	OwnershipNature        *OwnershipNature        `json:"ownership_nature" edgar:"ownershipNature,required"`
}

type DerivativeHolding struct {
	SecurityTitle             *VF                     `json:"security_title" edgar:"securityTitle,required"`
	ConversionOrExercisePrice *VF                     `json:"conversion_or_exercise_price" edgar:"conversionOrExercisePrice,required"`
	TransactionCoding         *HoldingCoding          `json:"transaction_coding" edgar:"transactionCoding"`
	ExerciseDate              *VF                     `json:"exercise_date" edgar:"exerciseDate,required"`
	ExpirationDate            *VF                     `json:"expiration_date" edgar:"expirationDate,required"`
	UnderlyingSecurity        *UnderlyingSecurity     `json:"underlying_security" edgar:"underlyingSecurity,required"`
	PostTransactionAmounts    *PostTransactionAmounts `json:"post_transaction_amounts" edgar:"postTransactionAmounts,required"`
	OwnershipNature           *OwnershipNature        `json:"ownership_nature" edgar:"ownershipNature,required"`
}

type TransactionCoding struct {
	FormType           *string `json:"form_type" edgar:"transactionFormType,required"`
	TransactionCode    *string `json:"transaction_code" edgar:"transactionCode,required"`
	EquitySwapInvolved *bool   `json:"equity_swap_involved" edgar:"equitySwapInvolved,required"`
	FootnoteID         *string `json:"footnote_id" edgar:"footnoteId,footnote"`
}

type HoldingCoding struct {
	FormType   *string `json:"form_type" edgar:"transactionFormType,required"`
	FootnoteID *string `json:"footnote_id" edgar:"footnoteId,footnote"`
}

type TransactionAmounts struct {
	Shares               *VF `json:"shares" edgar:"transactionShares,required"`
	PricePerShare        *VF `json:"price_per_share" edgar:"transactionPricePerShare,required"`
	AcquiredDisposedCode *VF `json:"acquired_disposed_code" edgar:"transactionAcquiredDisposedCode,required"`
}

// DerivativeTransactionAmounts reports either Shares or TotalValue.
type DerivativeTransactionAmounts struct {
	Shares               *VF `json:"shares" edgar:"transactionShares"`
	TotalValue           *VF `json:"total_value" edgar:"transactionTotalValue"`
	PricePerShare        *VF `json:"price_per_share" edgar:"transactionPricePerShare,required"`
	AcquiredDisposedCode *VF `json:"acquired_disposed_code" edgar:"transactionAcquiredDisposedCode,required"`
}

type UnderlyingSecurity struct {
	Title  *VF `json:"title" edgar:"underlyingSecurityTitle,required"`
	Shares *VF `json:"shares" edgar:"underlyingSecurityShares"`
	Value  *VF `json:"value" edgar:"underlyingSecurityValue"`
}

// PostTransactionAmounts reports either shares or value owned.
type PostTransactionAmounts struct {
	SharesOwnedFollowingTransaction *VF `json:"shares_owned_following_transaction" edgar:"sharesOwnedFollowingTransaction"`
	ValueOwnedFollowingTransaction  *VF `json:"value_owned_following_transaction" edgar:"valueOwnedFollowingTransaction"`
}

type OwnershipNature struct {
	DirectOrIndirectOwnership *VF `json:"direct_or_indirect_ownership" edgar:"directOrIndirectOwnership,required"`
	NatureOfOwnership         *VF `json:"nature_of_ownership" edgar:"natureOfOwnership"`
}

type Footnote struct {
	ID   *string `json:"id" edgar:"id,attr,required"`
	Note *string `json:"note" edgar:",text"`
}

type OwnerSignature struct {
	Name *string `json:"name" edgar:"signatureName,required"`
	Date *string `json:"date" edgar:"signatureDate,required"`
}
