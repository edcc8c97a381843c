package models

// ScamTags is the controlled vocabulary for report tags. Each value names a
// scam sub-type or campaign family. Server-side validation and the client
// package both read from this list so the two can never drift.
var ScamTags = []string{
	// Digital arrest
	"DigitalArrest", "Impersonation", "Extortion", "VideoExtortion", "Family",
	"ElderlyScam", "ImpersonationFraud", "PhysicalCoercion", "Deepfake", "GangBust",
	// Romance fraud
	"RomanceFraud", "MatrimonyScam", "PigButchering", "ITBreach",
	// Banking fraud
	"BankingFraud", "FakeBankSite", "InternalFraud", "FDWithdrawal", "MuleAccountFraud",
	"InvestmentScam", "InternalCollusion", "ForgedAccount", "CooperativeBankScam", "Embezzlement",
	// Crypto traps
	"CryptoTrap", "FakeCoinScam", "TelegramScam", "StagedPayoutFraud", "SocialEngineering",
	"AITradingScam", "USDTScam", "P2PScam",
	// Job scams
	"JobScam", "OfferLetterFraud", "OverseasEmploymentFraud", "WorkFromHomeFraud",
	"IdentityMisuse", "GSTFraud", "MicrotaskFraud", "SocialMediaScam", "VIPTaskFraud", "ReferralScam",
	// UPI fraud
	"UPIFraud", "AutoDebitPhish", "RefundScam", "ReversePayment", "SIMCloning",
	"PINTheft", "AuthorizedUPIAbuse", "QRCodedFraud", "FakeAppScam",
	// Ponzi and collective investment schemes
	"PonziScheme", "ChitFund", "SaradhaScam", "RoseValleyScam", "PACLScam",
	"FalconScam", "WebworkScam", "LandInvestmentFraud", "ClickEarningFraud", "InvestmentFraud",
	// Phishing and email fraud
	"Phishing", "EmailFraud", "IDTheft", "GovernmentFraud", "Smishing",
	"SIMClosure", "IndiaPostScam", "LegalNoticeScam", "EmailSecurity",
	// Loan app fraud
	"LoanFraud", "AppFraud", "ChineseAppScam", "Blackmail", "AppExtortion",
	"AppScam", "Harassment", "InternationalScam", "DataHarvest",
}

// ScamPlatforms is the controlled vocabulary for the channels a scam is run
// over.
var ScamPlatforms = []string{
	"WhatsApp", "Video Call", "Phone Call", "WhatsApp Video Call",
	"Matrimonial App", "Matrimonial Site", "Fake Trading Platform",
	"Bost Base (Fake Crypto Link)", "Facebook", "Online Crypto Platform",
	"Dating App (Hinge)", "Fake Crypto App", "Matrimony Website",
	"International Bank Transfers",
	"Website", "Phone", "Bank Branch", "Bank Account", "Bank Internal",
	"Fake Crypto Site", "Fake Trading Dashboard", "P2P Trading",
	"Agent Office", "Mobile App", "YouTube", "Instagram", "Telegram",
	"UPI", "SMS", "Email", "Mobile Network", "PhonePe UI", "Public QR Scan",
	"Offline Agent Network", "Collective Investment Scheme", "Agent Network",
	"Offline Agents", "Promotional Brochures", "Social Media", "Web",
	"iMessage", "Mobile App (APK)", "Android App", "App", "Mobile",
}

var (
	scamTagSet      = toSet(ScamTags)
	scamPlatformSet = toSet(ScamPlatforms)
)

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// IsScamTag reports whether tag belongs to the tag vocabulary.
func IsScamTag(tag string) bool { return scamTagSet[tag] }

// IsScamPlatform reports whether platform belongs to the platform vocabulary.
func IsScamPlatform(platform string) bool { return scamPlatformSet[platform] }
