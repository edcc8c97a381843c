// Seeds the scamreports collection with a curated set of documented scam
// cases and ensures the text index the search endpoint relies on.
//
// Usage: go run ./scripts/seed
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/scamdex/scamdex-api/config"
	"github.com/scamdex/scamdex-api/models"
)

func main() {
	_ = godotenv.Load()
	conf := config.New()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URL))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	coll := client.Database(conf.DatabaseName).Collection("scamreports")

	// search relies on a composite text index over the prose fields
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "summary", Value: "text"},
			{Key: "tags", Value: "text"},
			{Key: "regions", Value: "text"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	zap.S().Info("text index ensured on scamreports")

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal(err)
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	docs := make([]interface{}, 0, len(seedReports))
	for i := range seedReports {
		r := seedReports[i]
		r.Normalize()
		if errs := r.Validate(); len(errs) > 0 {
			log.Fatalf("seed entry %q invalid: %s: %s", r.Title, errs[0].Field, errs[0].Message)
		}
		r.ID = primitive.NewObjectID()
		r.CreatedAt = now
		r.UpdatedAt = now
		docs = append(docs, r)
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatal(err)
	}
	zap.S().Infow("seeded scam reports", "inserted", len(res.InsertedIDs))
}

var seedReports = []models.ScamReport{
	{
		Title:   "Saradha Group Ponzi Scam (2013)",
		Summary: "The Saradha Group, based in Kolkata, promised returns of up to 50% per annum through chit-fund and collective investment schemes, raising over ₹2,500 crore from more than 17 lakh investors across eastern India. Money flowed through a web of over 200 companies and earlier investors were paid with new deposits until the scheme collapsed in 2013.",
		DetectionTips: []string{
			"Return rates well above market norms are a major red flag.",
			"Funds collected without SEBI approval through shell companies, and old investors paid from new deposits, indicate a Ponzi structure.",
		},
		Tags:       []string{"PonziScheme", "ChitFund", "SaradhaScam"},
		Platform:   []string{"Offline Agent Network"},
		Regions:    []string{"West Bengal", "Odisha", "Assam", "Jharkhand"},
		SourceURLs: []string{"https://www.indiatvnews.com/news/india-what-is-saradha-scam-how-did-india-s-biggest-ponzi-scheme-unravel-502950"},
		FraudScore: 95,
	},
	{
		Title:   "Rose Valley Chit Fund Ponzi Scam (2015)",
		Summary: "The Rose Valley Group collected deposits of over ₹15,000 crore across eastern India by promising returns and holiday packages via chit funds and real estate ventures, paying earlier investors with new money. SEBI and ED investigations revealed shell accounts and asset diversion; most investors remain unpaid.",
		DetectionTips: []string{
			"Chit-fund schemes promising unrealistic returns without a real business model, and shell companies cycling money between accounts, are classic warning signs.",
		},
		Tags:       []string{"PonziScheme", "ChitFund", "RoseValleyScam"},
		Platform:   []string{"Collective Investment Scheme", "Agent Network"},
		Regions:    []string{"West Bengal", "Assam", "Odisha", "Tripura", "Jharkhand"},
		SourceURLs: []string{"https://en.wikipedia.org/wiki/Rose_Valley_financial_scandal"},
		FraudScore: 94,
	},
	{
		Title:   "PACL / Pearls Group Scam (2016)",
		Summary: "PACL raised nearly ₹49,000 crore from over 5 crore investors by promising land ownership and high returns, with no actual land development. SEBI declared it an illegal collective scheme and ordered refunds; it remains one of India's largest financial frauds with only partial restitution.",
		DetectionTips: []string{
			"Promises of guaranteed land plots without verified documentation, and returns paid from new investor proceeds rather than business revenue, signal a collective investment fraud.",
		},
		Tags:       []string{"PonziScheme", "PACLScam", "LandInvestmentFraud"},
		Platform:   []string{"Offline Agents", "Promotional Brochures"},
		Regions:    []string{"Pan-India"},
		SourceURLs: []string{"https://timesofindia.indiatimes.com/city/delhi/delhi-court-summons-hayer-in-rs-48000-cr-ponzi-case/articleshow/122163334.cms"},
		FraudScore: 98,
	},
	{
		Title:   "Fake 'PAN 2.0' Upgrade Phishing Scam",
		Summary: "Fraudulent emails promising an upgraded 'PAN 2.0' card circulate with fake seals and non-government domains, luring users to cloned Income Tax portals that harvest PAN, Aadhaar and bank credentials for identity theft. PIB and the Income Tax Department have issued public warnings.",
		DetectionTips: []string{
			"Genuine Income Tax emails come from .gov.in domains. Never click links asking for personal or financial information; access PAN services only via official portals.",
		},
		Tags:       []string{"Phishing", "EmailFraud", "IDTheft"},
		Platform:   []string{"Email", "Website"},
		Regions:    []string{"Pan-India"},
		SourceURLs: []string{"https://www.livemint.com/technology/tech-news/fake-pan-2-0-scam-alert-government-warns-citizens-against-phishing-emails-what-you-must-know-11753198585721.html"},
		FraudScore: 82,
	},
	{
		Title:   "Phishing Scam Mimicking Ministry of Defence Login Site",
		Summary: "Phishing sites closely mimicking the Ministry of Defence portal use lookalike domains to trick government officials into entering NIC login credentials, after which users are redirected to an error page while attackers take the credentials. A NIC advisory confirmed the URLs and told officials to change passwords immediately.",
		DetectionTips: []string{
			"Phishing URLs hide extra subdomains before the legitimate-looking name. Government sites never send unsolicited emails requesting login credentials.",
		},
		Tags:       []string{"Phishing", "GovernmentFraud"},
		Platform:   []string{"Email", "Website"},
		Regions:    []string{"Delhi"},
		SourceURLs: []string{"https://timesofindia.indiatimes.com/india/govt-employees-warned-of-phishing-links-that-mimic-defence-ministry-to-steal-data/articleshow/113110884.cms"},
		FraudScore: 86,
	},
	{
		Title:   "Fake Chinese Loan Apps — ₹719 Cr Scam",
		Summary: "Operators linked to Chinese entities ran hundreds of fake loan apps, moving ₹719 crore through roughly 500 mule bank accounts. Victims were lured with instant loans, charged advance EMIs and blackmailed with harvested personal data. The Enforcement Directorate charged multiple people under PMLA.",
		DetectionTips: []string{
			"Be wary of loan apps distributed only via links or APKs rather than official stores, of advance EMI charges before disbursement, and of apps that harvest contacts and photos.",
		},
		Tags:       []string{"LoanFraud", "AppFraud", "ChineseAppScam"},
		Platform:   []string{"Mobile App (APK)", "UPI"},
		Regions:    []string{"Kerala", "Haryana"},
		SourceURLs: []string{"https://www.business-standard.com/india-news/ed-arrests-key-players-in-rs-719-crore-fake-chinese-loan-app-scam-125022101149_1.html"},
		FraudScore: 92,
	},
	{
		Title:   "Fake UPI Link Phishing Scam",
		Summary: "Cybercriminals send phishing links disguised as legitimate merchants via WhatsApp, SMS or email. The links open malicious web apps mimicking UPI payment pages, and victims unknowingly approve auto-debit permissions that drain their accounts. RBI data shows such cases surged in FY 2023-24.",
		DetectionTips: []string{
			"Never tap payment URLs received over chat without verifying the domain, and never approve unfamiliar collect or auto-debit requests.",
		},
		Tags:       []string{"UPIFraud", "Phishing", "AutoDebitPhish"},
		Platform:   []string{"WhatsApp", "SMS", "Email"},
		Regions:    []string{"Pan-India"},
		SourceURLs: []string{"https://www.indiatoday.in/amp/business/story/5-common-upi-related-frauds-and-tips-to-prevent-them-2677463-2025-02-10"},
		FraudScore: 88,
	},
	{
		Title:   "Fake Refund UPI Scam",
		Summary: "Scammers pretend to have sent a mistaken refund to the victim's UPI ID and pressure them to return the overpaid amount. The credited sum never existed, so the return transfer is real money lost. NPCI and RBI have flagged this as a frequent modus operandi.",
		DetectionTips: []string{
			"Never return money based on messages alone; confirm any credit in your official bank app first and treat unexpected transfers as suspicious.",
		},
		Tags:       []string{"UPIFraud", "RefundScam", "ReversePayment"},
		Platform:   []string{"UPI"},
		Regions:    []string{"Pan-India"},
		SourceURLs: []string{"https://www.indiatoday.in/amp/business/story/5-common-upi-related-frauds-and-tips-to-prevent-them-2677463-2025-02-10"},
		FraudScore: 85,
	},
	{
		Title:   "Fake Overseas Job Offers Scam – ₹78.5 Lakh Loss",
		Summary: "A Mumbai fraudster promised overseas jobs with permanent visas for the USA and New Zealand, using fake offer letters, flight tickets and counterfeit visas. Five aspirants collectively lost ₹78.5 lakh before police traced the operation to a Mira Road office and arrested the primary suspect.",
		DetectionTips: []string{
			"Verify offers through genuine consular or HR portals and cross-check paperwork via official overseas employment channels before paying any fee.",
		},
		Tags:       []string{"JobScam", "OfferLetterFraud", "OverseasEmploymentFraud"},
		Platform:   []string{"WhatsApp", "Email", "Agent Office"},
		Regions:    []string{"Mumbai", "Gujarat"},
		SourceURLs: []string{"https://timesofindia.indiatimes.com/city/mumbai/five-conned-of-78-5l-with-fake-overseas-job-offers-one-held/articleshow/122866432.cms"},
		FraudScore: 95,
	},
	{
		Title:   "CBI-Busted ₹350 Crore Crypto Ponzi Scam",
		Summary: "The CBI busted a nationwide crypto Ponzi network operating across seven states, recruiting investors over WhatsApp and social media with promises of guaranteed returns and laundering proceeds through centralized exchanges and over 200 mule bank accounts.",
		DetectionTips: []string{
			"Beware of groups promising guaranteed crypto returns promoted via chat apps with no audit trail; legitimate investment platforms register with the regulator.",
		},
		Tags:       []string{"CryptoTrap", "PonziScheme", "InvestmentFraud"},
		Platform:   []string{"WhatsApp", "Social Media", "Telegram"},
		Regions:    []string{"Delhi", "Punjab", "Madhya Pradesh", "Gujarat", "Tamil Nadu"},
		SourceURLs: []string{"https://www.ndtv.com/india-news/cbi-busts-rs-350-crore-crypto-ponzi-scam-promoted-through-social-media-7550421"},
		FraudScore: 92,
	},
	{
		Title:   "Fake Bank Website Scam – ₹1.18 Lakh Loss",
		Summary: "Kolkata and Jamtara police arrested four individuals who built a fake website and helpline impersonating a private bank, tricking a victim into sharing login credentials and transferring ₹1.18 lakh from his account. Police seized cash, 39 phones and electronic devices in the raid.",
		DetectionTips: []string{
			"Verify bank URLs manually, never call numbers shared over messages, and report unauthorized OTP prompts immediately.",
		},
		Tags:       []string{"BankingFraud", "Phishing", "FakeBankSite"},
		Platform:   []string{"Website", "Phone"},
		Regions:    []string{"Kolkata", "Jharkhand"},
		SourceURLs: []string{"https://timesofindia.indiatimes.com/city/ranchi/four-held-for-cyber-fraud/articleshow/122939243.cms"},
		FraudScore: 85,
	},
	{
		Title:   "Ahmedabad Restaurant Owner Duped of ₹1.42 Crore via Matrimony Crypto Scam",
		Summary: "A restaurant owner befriended a persona on a matrimonial app who posed as a jewellery trader, built an emotional bond and steered him into a fake USDT trading platform. Small payouts built trust before withdrawals were blocked behind demands for profit taxes; the profile photos were stolen from a real person.",
		DetectionTips: []string{
			"Be suspicious of profiles mixing romance and investment advice, and test any platform with a small withdrawal before committing more money.",
		},
		Tags:       []string{"RomanceFraud", "CryptoTrap", "MatrimonyScam"},
		Platform:   []string{"Matrimonial App", "WhatsApp", "Fake Trading Platform"},
		Regions:    []string{"Ahmedabad"},
		SourceURLs: []string{"https://timesofindia.indiatimes.com/city/ahmedabad/restaurant-owner-scammed-out-of-1-42cr/articleshow/122423158.cms"},
		FraudScore: 92,
	},
	{
		Title:   "Retired Civil Contractor Loses ₹88 Lakh in Digital Arrest Scam (Ballari)",
		Summary: "Scammers posing as CBI and ED officials over video calls claimed a retired contractor's ATM card was linked to a money laundering racket, kept him on call for days with fake legal documents and virtual interrogations, and coerced repeated transfers totaling ₹88.2 lakh before he realized the fraud.",
		DetectionTips: []string{
			"No law enforcement agency arrests or prosecutes via video call. Be skeptical of urgent ongoing demands backed by documents sent over chat.",
		},
		Tags:       []string{"DigitalArrest", "Impersonation", "Extortion"},
		Platform:   []string{"WhatsApp", "Video Call"},
		Regions:    []string{"Ballari, Karnataka"},
		SourceURLs: []string{"https://timesofindia.indiatimes.com/city/hubballi/retired-civil-contractor-loses-rs-88-lakh-in-digital-arrest-scam-in-ballari/articleshow/122937894.cms"},
		FraudScore: 94,
	},
}
