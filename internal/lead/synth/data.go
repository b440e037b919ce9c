package synth

var defaultFirstNames = []string{
	"Sarah", "Michael", "Jennifer", "David", "Lisa", "James", "Emily", "Robert",
	"Amanda", "William", "Jessica", "Christopher", "Ashley", "Daniel", "Michelle",
	"Matthew", "Stephanie", "Andrew", "Rachel", "Joseph",
}

var defaultLastNames = []string{
	"Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson",
}

var defaultCompanyPrefixes = []string{
	"Tech", "Digital", "Cloud", "Smart", "Data", "Cyber", "Quantum", "Vertex",
	"Nexus", "Apex", "Prime", "Elite", "Global", "Advanced", "Innovative",
}

var defaultCompanySuffixes = []string{
	"Solutions", "Systems", "Technologies", "Dynamics", "Innovations",
	"Labs", "Group", "Corp", "Inc", "Ventures",
}

// defaultInsights are the generic insight templates. CompanyPlaceholder is
// replaced with the lead's company name.
var defaultInsights = []string{
	CompanyPlaceholder + " recently raised funding for expansion",
	"Active on professional networks and industry events",
	"Company has 50-200 employees (ideal mid-market)",
	"Budget cycle aligns with Q1-Q2 planning",
	"Previous vendor contracts expiring soon",
	"Strong online presence and brand recognition",
	"Technology stack indicates need for modernization",
	"Competitor recently approached this account",
}
