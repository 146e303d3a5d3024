package answer

// cannedTopics holds the fixed explanations for the dashboard and pipeline
// topics. These are configuration, not computed text.
var cannedTopics = map[string]string{
	"eol": "EOL shows Total Tested, Passed, Retested-Recovered, and Failed with Stage/Model/Date slicers. " +
		"Failure reasons parsed by tokens ending ':0'. Default-to-today via epoch logic.",
	"etl": "Python ETL automates MySQL → Power BI with daily refresh at 12:00 AM IST via Gateway. " +
		"Goal: zero manual reporting and stable leadership views.",
	"finance": "Finance dashboards (April–May & Q1): revenue, purchase, margin, closing stock; " +
		"Branch/Type/Month slicers; OEM vs After-Market comparisons; clean trend visuals.",
	"deployment": "Dashboards embedded via secure iFrame on the company portal (Service auth) " +
		"with daily refresh via Gateway.",
}
