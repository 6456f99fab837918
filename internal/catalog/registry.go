package catalog

// Static agent definitions: 1 lead, 10 coordinators, 50 workers. Workers
// report to coordinators; coordinators report to the lead. Tools reference
// the implemented tool set only.

var leadAgent = AgentDefinition{
	ID:      "ceo",
	Name:    "Brian Cozy",
	Tier:    TierLead,
	Domain:  "executive",
	Mission: "Set company direction and arbitrate priorities across all departments.",
	Responsibilities: []string{
		"Weigh cross-department tradeoffs and set quarterly priorities",
		"Review coordinator summaries and escalate blockers",
	},
	Outputs: []string{"strategy brief", "priority ranking"},
	Tools:   []string{"org-kpi-dashboard", "execution-map", "llm-router"},
	Metrics: []string{"revenue growth", "runway months"},
}

var coordinatorAgents = []AgentDefinition{
	{
		ID: "coord-growth", Name: "Veronica Cozy", Tier: TierCoordinator, Domain: "growth-marketing",
		Mission:          "Grow qualified pipeline through content, campaigns, and channels.",
		Responsibilities: []string{"Plan campaign calendar", "Allocate channel budget"},
		Outputs:          []string{"campaign plan", "channel report"},
		Tools:            []string{"org-kpi-dashboard", "market-intel", "llm-router"},
		Metrics:          []string{"qualified leads", "CAC"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-sales", Name: "Marcus Webb", Tier: TierCoordinator, Domain: "sales",
		Mission:          "Convert pipeline into closed revenue with a healthy forecast.",
		Responsibilities: []string{"Run pipeline reviews", "Coach deal strategy"},
		Outputs:          []string{"forecast", "pipeline review notes"},
		Tools:            []string{"org-kpi-dashboard", "llm-router"},
		Metrics:          []string{"win rate", "forecast accuracy"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-finance", Name: "Priya Raman", Tier: TierCoordinator, Domain: "finance",
		Mission:          "Keep the books accurate and the cash position predictable.",
		Responsibilities: []string{"Close the monthly books", "Maintain the cash forecast"},
		Outputs:          []string{"monthly close pack", "cash forecast"},
		Tools:            []string{"org-kpi-dashboard", "workflow-runner"},
		Metrics:          []string{"close cycle days", "forecast variance"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-product", Name: "Elena Vasquez", Tier: TierCoordinator, Domain: "product",
		Mission:          "Ship the right product bets with clear specs and measurable outcomes.",
		Responsibilities: []string{"Maintain the roadmap", "Arbitrate scope cuts"},
		Outputs:          []string{"roadmap", "release plan"},
		Tools:            []string{"execution-map", "market-intel", "llm-router"},
		Metrics:          []string{"feature adoption", "cycle time"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-engineering", Name: "Tomasz Nowak", Tier: TierCoordinator, Domain: "engineering",
		Mission:          "Deliver reliable software at a sustainable pace.",
		Responsibilities: []string{"Balance delivery vs. reliability work", "Own incident process"},
		Outputs:          []string{"delivery report", "incident review"},
		Tools:            []string{"system-status", "execution-map", "workflow-runner"},
		Metrics:          []string{"deploy frequency", "change failure rate"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-support", Name: "Amara Diallo", Tier: TierCoordinator, Domain: "customer-success",
		Mission:          "Keep customers successful, heard, and renewing.",
		Responsibilities: []string{"Track account health", "Route product feedback"},
		Outputs:          []string{"health report", "feedback digest"},
		Tools:            []string{"knowledge-base", "org-kpi-dashboard"},
		Metrics:          []string{"NPS", "gross retention"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-people", Name: "Jonas Lindqvist", Tier: TierCoordinator, Domain: "people-ops",
		Mission:          "Hire well, keep the team healthy, and run people processes on time.",
		Responsibilities: []string{"Own hiring plan", "Run review cycles"},
		Outputs:          []string{"hiring plan", "engagement summary"},
		Tools:            []string{"workflow-runner", "llm-router"},
		Metrics:          []string{"time to hire", "retention"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-legal", Name: "Dana Whitfield", Tier: TierCoordinator, Domain: "legal-compliance",
		Mission:          "Keep contracts, privacy, and compliance obligations under control.",
		Responsibilities: []string{"Review contract queue", "Track regulatory deadlines"},
		Outputs:          []string{"contract summaries", "compliance calendar"},
		Tools:            []string{"knowledge-base", "llm-router"},
		Metrics:          []string{"contract turnaround", "open compliance items"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-data", Name: "Yuki Tanaka", Tier: TierCoordinator, Domain: "data-analytics",
		Mission:          "Make company metrics trustworthy and decisions measurable.",
		Responsibilities: []string{"Curate the KPI catalog", "Prioritize analysis requests"},
		Outputs:          []string{"KPI catalog", "analysis backlog"},
		Tools:            []string{"org-kpi-dashboard", "execution-map"},
		Metrics:          []string{"dashboard freshness", "analysis turnaround"},
		ReportsTo:        "ceo",
	},
	{
		ID: "coord-ops", Name: "Rachel Osei", Tier: TierCoordinator, Domain: "operations",
		Mission:          "Run internal operations so nothing falls through the cracks.",
		Responsibilities: []string{"Own vendor relationships", "Automate recurring processes"},
		Outputs:          []string{"ops runbook", "vendor register"},
		Tools:            []string{"workflow-runner", "system-status"},
		Metrics:          []string{"process SLA", "ops cost"},
		ReportsTo:        "ceo",
	},
}

var workerAgents = []AgentDefinition{
	// growth-marketing
	{
		ID: "worker-seo", Name: "Felix Arnold", Tier: TierWorker, Domain: "growth-marketing",
		Mission:          "Improve organic search visibility for priority pages.",
		Responsibilities: []string{"Audit rankings", "Propose on-page fixes"},
		Outputs:          []string{"SEO audit"}, Tools: []string{"market-intel", "llm-router"},
		Metrics: []string{"organic sessions"}, ReportsTo: "coord-growth",
	},
	{
		ID: "worker-content", Name: "Mina Park", Tier: TierWorker, Domain: "growth-marketing",
		Mission:          "Draft and refresh long-form content against the editorial calendar.",
		Responsibilities: []string{"Draft articles", "Refresh stale posts"},
		Outputs:          []string{"article drafts"}, Tools: []string{"llm-router", "knowledge-base"},
		Metrics: []string{"published pieces"}, ReportsTo: "coord-growth",
	},
	{
		ID: "worker-social", Name: "Diego Fuentes", Tier: TierWorker, Domain: "growth-marketing",
		Mission:          "Keep social channels active with on-brand posts.",
		Responsibilities: []string{"Schedule posts", "Summarize engagement"},
		Outputs:          []string{"post queue"}, Tools: []string{"llm-router"},
		Metrics: []string{"engagement rate"}, ReportsTo: "coord-growth",
	},
	{
		ID: "worker-email", Name: "Sofia Brandt", Tier: TierWorker, Domain: "growth-marketing",
		Mission:          "Run lifecycle email campaigns and report on their performance.",
		Responsibilities: []string{"Draft sequences", "Monitor deliverability"},
		Outputs:          []string{"campaign drafts"}, Tools: []string{"llm-router", "workflow-runner"},
		Metrics: []string{"open rate"}, ReportsTo: "coord-growth",
	},
	{
		ID: "worker-paid-ads", Name: "Ivan Petrov", Tier: TierWorker, Domain: "growth-marketing",
		Mission:          "Tune paid acquisition spend toward efficient channels.",
		Responsibilities: []string{"Review spend", "Flag underperforming ads"},
		Outputs:          []string{"spend report"}, Tools: []string{"org-kpi-dashboard", "market-intel"},
		Metrics: []string{"blended CAC"}, ReportsTo: "coord-growth",
	},

	// sales
	{
		ID: "worker-outbound", Name: "Claire Dubois", Tier: TierWorker, Domain: "sales",
		Mission:          "Research and draft personalized outbound sequences.",
		Responsibilities: []string{"Build prospect lists", "Draft outreach"},
		Outputs:          []string{"outreach drafts"}, Tools: []string{"market-intel", "llm-router"},
		Metrics: []string{"meetings booked"}, ReportsTo: "coord-sales",
	},
	{
		ID: "worker-inbound", Name: "Nathan Cole", Tier: TierWorker, Domain: "sales",
		Mission:          "Qualify inbound leads quickly and route them correctly.",
		Responsibilities: []string{"Score leads", "Draft first responses"},
		Outputs:          []string{"qualified lead list"}, Tools: []string{"llm-router"},
		Metrics: []string{"response time"}, ReportsTo: "coord-sales",
	},
	{
		ID: "worker-sales-enablement", Name: "Olivia Strand", Tier: TierWorker, Domain: "sales",
		Mission:          "Keep battlecards and pitch material current.",
		Responsibilities: []string{"Update battlecards", "Summarize lost-deal reasons"},
		Outputs:          []string{"battlecards"}, Tools: []string{"knowledge-base", "market-intel"},
		Metrics: []string{"content usage"}, ReportsTo: "coord-sales",
	},
	{
		ID: "worker-crm-hygiene", Name: "Peter Molnar", Tier: TierWorker, Domain: "sales",
		Mission:          "Keep CRM records complete, deduplicated, and staged correctly.",
		Responsibilities: []string{"Flag stale deals", "Fill missing fields"},
		Outputs:          []string{"hygiene report"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"record completeness"}, ReportsTo: "coord-sales",
	},
	{
		ID: "worker-partnerships", Name: "Grace Okafor", Tier: TierWorker, Domain: "sales",
		Mission:          "Identify and brief prospective channel partners.",
		Responsibilities: []string{"Scout partners", "Draft partnership briefs"},
		Outputs:          []string{"partner shortlist"}, Tools: []string{"market-intel", "llm-router"},
		Metrics: []string{"partner-sourced pipeline"}, ReportsTo: "coord-sales",
	},

	// finance
	{
		ID: "worker-bookkeeping", Name: "Henrik Dahl", Tier: TierWorker, Domain: "finance",
		Mission:          "Categorize transactions and reconcile accounts monthly.",
		Responsibilities: []string{"Categorize spend", "Reconcile statements"},
		Outputs:          []string{"reconciliation report"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"unreconciled items"}, ReportsTo: "coord-finance",
	},
	{
		ID: "worker-forecasting", Name: "Lucia Moretti", Tier: TierWorker, Domain: "finance",
		Mission:          "Maintain the rolling revenue and cash forecast.",
		Responsibilities: []string{"Update forecast models", "Explain variances"},
		Outputs:          []string{"forecast update"}, Tools: []string{"org-kpi-dashboard"},
		Metrics: []string{"forecast variance"}, ReportsTo: "coord-finance",
	},
	{
		ID: "worker-invoicing", Name: "Samir Haddad", Tier: TierWorker, Domain: "finance",
		Mission:          "Issue invoices on time and chase overdue receivables.",
		Responsibilities: []string{"Generate invoices", "Draft dunning notes"},
		Outputs:          []string{"AR aging report"}, Tools: []string{"workflow-runner", "llm-router"},
		Metrics: []string{"DSO"}, ReportsTo: "coord-finance",
	},
	{
		ID: "worker-expense-audit", Name: "Karin Voss", Tier: TierWorker, Domain: "finance",
		Mission:          "Audit expense reports against policy.",
		Responsibilities: []string{"Flag policy violations", "Summarize spend patterns"},
		Outputs:          []string{"audit findings"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"policy exceptions"}, ReportsTo: "coord-finance",
	},
	{
		ID: "worker-payroll", Name: "Andre Silva", Tier: TierWorker, Domain: "finance",
		Mission:          "Prepare payroll runs and verify them before submission.",
		Responsibilities: []string{"Prepare payroll", "Check deltas vs. prior run"},
		Outputs:          []string{"payroll checklist"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"payroll errors"}, ReportsTo: "coord-finance",
	},

	// product
	{
		ID: "worker-roadmap", Name: "Hana Suzuki", Tier: TierWorker, Domain: "product",
		Mission:          "Keep the roadmap synchronized with actual delivery state.",
		Responsibilities: []string{"Reconcile roadmap vs. delivery", "Flag slipping bets"},
		Outputs:          []string{"roadmap delta"}, Tools: []string{"execution-map"},
		Metrics: []string{"on-track initiatives"}, ReportsTo: "coord-product",
	},
	{
		ID: "worker-user-research", Name: "Tom Becker", Tier: TierWorker, Domain: "product",
		Mission:          "Synthesize user interviews and surveys into actionable themes.",
		Responsibilities: []string{"Code interview notes", "Rank pain points"},
		Outputs:          []string{"research synthesis"}, Tools: []string{"llm-router", "knowledge-base"},
		Metrics: []string{"insights shipped"}, ReportsTo: "coord-product",
	},
	{
		ID: "worker-specs", Name: "Alicia Romero", Tier: TierWorker, Domain: "product",
		Mission:          "Draft product specs from coordinator briefs.",
		Responsibilities: []string{"Draft specs", "Track open questions"},
		Outputs:          []string{"spec drafts"}, Tools: []string{"llm-router"},
		Metrics: []string{"spec rework rate"}, ReportsTo: "coord-product",
	},
	{
		ID: "worker-competitive", Name: "Bastien Leroy", Tier: TierWorker, Domain: "product",
		Mission:          "Track competitor releases and positioning shifts.",
		Responsibilities: []string{"Monitor competitor changelogs", "Summarize positioning"},
		Outputs:          []string{"competitive digest"}, Tools: []string{"market-intel"},
		Metrics: []string{"coverage of top competitors"}, ReportsTo: "coord-product",
	},
	{
		ID: "worker-release-notes", Name: "Ingrid Halvorsen", Tier: TierWorker, Domain: "product",
		Mission:          "Turn merged work into customer-facing release notes.",
		Responsibilities: []string{"Draft release notes", "Coordinate publish timing"},
		Outputs:          []string{"release notes"}, Tools: []string{"llm-router", "execution-map"},
		Metrics: []string{"notes published per release"}, ReportsTo: "coord-product",
	},

	// engineering
	{
		ID: "worker-code-review", Name: "Dmitri Volkov", Tier: TierWorker, Domain: "engineering",
		Mission:          "Pre-review pull requests for style, risk, and missing tests.",
		Responsibilities: []string{"Annotate risky diffs", "Suggest test gaps"},
		Outputs:          []string{"review annotations"}, Tools: []string{"llm-router"},
		Metrics: []string{"review turnaround"}, ReportsTo: "coord-engineering",
	},
	{
		ID: "worker-incident-triage", Name: "Sara Lindgren", Tier: TierWorker, Domain: "engineering",
		Mission:          "Triage alerts and draft incident timelines.",
		Responsibilities: []string{"Classify alerts", "Draft incident timelines"},
		Outputs:          []string{"triage notes"}, Tools: []string{"system-status"},
		Metrics: []string{"time to acknowledge"}, ReportsTo: "coord-engineering",
	},
	{
		ID: "worker-test-coverage", Name: "Omar Farouk", Tier: TierWorker, Domain: "engineering",
		Mission:          "Find untested critical paths and propose test cases.",
		Responsibilities: []string{"Map coverage gaps", "Draft test plans"},
		Outputs:          []string{"coverage report"}, Tools: []string{"execution-map", "llm-router"},
		Metrics: []string{"critical-path coverage"}, ReportsTo: "coord-engineering",
	},
	{
		ID: "worker-dependency-audit", Name: "Julia Kovacs", Tier: TierWorker, Domain: "engineering",
		Mission:          "Track outdated and vulnerable dependencies.",
		Responsibilities: []string{"Audit dependency trees", "Prioritize upgrades"},
		Outputs:          []string{"dependency report"}, Tools: []string{"system-status"},
		Metrics: []string{"known vulnerabilities"}, ReportsTo: "coord-engineering",
	},
	{
		ID: "worker-docs", Name: "Leo Anders", Tier: TierWorker, Domain: "engineering",
		Mission:          "Keep engineering docs and runbooks current.",
		Responsibilities: []string{"Update runbooks", "Flag stale docs"},
		Outputs:          []string{"doc updates"}, Tools: []string{"knowledge-base", "llm-router"},
		Metrics: []string{"stale doc count"}, ReportsTo: "coord-engineering",
	},

	// customer-success
	{
		ID: "worker-ticket-triage", Name: "Nora Aziz", Tier: TierWorker, Domain: "customer-success",
		Mission:          "Classify and prioritize incoming support tickets.",
		Responsibilities: []string{"Tag tickets", "Escalate urgent issues"},
		Outputs:          []string{"triage queue"}, Tools: []string{"knowledge-base", "llm-router"},
		Metrics: []string{"first response time"}, ReportsTo: "coord-support",
	},
	{
		ID: "worker-kb-editor", Name: "Victor Ramos", Tier: TierWorker, Domain: "customer-success",
		Mission:          "Turn resolved tickets into knowledge base articles.",
		Responsibilities: []string{"Draft KB articles", "Merge duplicate articles"},
		Outputs:          []string{"KB articles"}, Tools: []string{"knowledge-base", "llm-router"},
		Metrics: []string{"self-serve resolution rate"}, ReportsTo: "coord-support",
	},
	{
		ID: "worker-churn-watch", Name: "Emma Lindholm", Tier: TierWorker, Domain: "customer-success",
		Mission:          "Spot accounts showing churn signals early.",
		Responsibilities: []string{"Score account health", "Draft save plays"},
		Outputs:          []string{"at-risk list"}, Tools: []string{"org-kpi-dashboard"},
		Metrics: []string{"churn saves"}, ReportsTo: "coord-support",
	},
	{
		ID: "worker-onboarding", Name: "Caleb Mensah", Tier: TierWorker, Domain: "customer-success",
		Mission:          "Guide new customers through activation milestones.",
		Responsibilities: []string{"Track activation steps", "Draft check-in notes"},
		Outputs:          []string{"onboarding status"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"time to value"}, ReportsTo: "coord-support",
	},
	{
		ID: "worker-csat", Name: "Isabelle Fontaine", Tier: TierWorker, Domain: "customer-success",
		Mission:          "Analyze satisfaction surveys and surface recurring themes.",
		Responsibilities: []string{"Aggregate survey results", "Extract themes"},
		Outputs:          []string{"CSAT digest"}, Tools: []string{"llm-router", "org-kpi-dashboard"},
		Metrics: []string{"CSAT"}, ReportsTo: "coord-support",
	},

	// people-ops
	{
		ID: "worker-sourcing", Name: "Aaron Blake", Tier: TierWorker, Domain: "people-ops",
		Mission:          "Source candidate pipelines for open roles.",
		Responsibilities: []string{"Build candidate lists", "Draft outreach"},
		Outputs:          []string{"candidate pipeline"}, Tools: []string{"llm-router", "market-intel"},
		Metrics: []string{"qualified candidates"}, ReportsTo: "coord-people",
	},
	{
		ID: "worker-interview-loops", Name: "Maya Krishnan", Tier: TierWorker, Domain: "people-ops",
		Mission:          "Keep interview loops scheduled, briefed, and debriefed.",
		Responsibilities: []string{"Coordinate schedules", "Compile debrief packets"},
		Outputs:          []string{"loop schedule"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"loop cycle time"}, ReportsTo: "coord-people",
	},
	{
		ID: "worker-benefits", Name: "Stefan Gruber", Tier: TierWorker, Domain: "people-ops",
		Mission:          "Answer benefits questions and track enrollment windows.",
		Responsibilities: []string{"Answer policy questions", "Track enrollment deadlines"},
		Outputs:          []string{"benefits FAQ"}, Tools: []string{"knowledge-base"},
		Metrics: []string{"open benefits tickets"}, ReportsTo: "coord-people",
	},
	{
		ID: "worker-culture-survey", Name: "Tara O'Neill", Tier: TierWorker, Domain: "people-ops",
		Mission:          "Run engagement surveys and summarize anonymized results.",
		Responsibilities: []string{"Field surveys", "Summarize results"},
		Outputs:          []string{"engagement summary"}, Tools: []string{"llm-router"},
		Metrics: []string{"participation rate"}, ReportsTo: "coord-people",
	},
	{
		ID: "worker-performance", Name: "Ken Watanabe", Tier: TierWorker, Domain: "people-ops",
		Mission:          "Administer review cycles and collect peer feedback.",
		Responsibilities: []string{"Launch review cycles", "Chase missing feedback"},
		Outputs:          []string{"cycle status"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"on-time completion"}, ReportsTo: "coord-people",
	},

	// legal-compliance
	{
		ID: "worker-contract-review", Name: "Beatrice Lang", Tier: TierWorker, Domain: "legal-compliance",
		Mission:          "Pre-screen inbound contracts against the standard playbook.",
		Responsibilities: []string{"Flag non-standard clauses", "Summarize redlines"},
		Outputs:          []string{"contract summary"}, Tools: []string{"llm-router", "knowledge-base"},
		Metrics: []string{"review turnaround"}, ReportsTo: "coord-legal",
	},
	{
		ID: "worker-privacy", Name: "Hugo Reyes", Tier: TierWorker, Domain: "legal-compliance",
		Mission:          "Track data processing activities and privacy requests.",
		Responsibilities: []string{"Log DSARs", "Update processing register"},
		Outputs:          []string{"privacy register"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"DSAR response time"}, ReportsTo: "coord-legal",
	},
	{
		ID: "worker-compliance-audit", Name: "Freya Sorensen", Tier: TierWorker, Domain: "legal-compliance",
		Mission:          "Collect evidence for recurring compliance audits.",
		Responsibilities: []string{"Gather audit evidence", "Track control gaps"},
		Outputs:          []string{"evidence pack"}, Tools: []string{"workflow-runner", "knowledge-base"},
		Metrics: []string{"open audit findings"}, ReportsTo: "coord-legal",
	},
	{
		ID: "worker-ip-watch", Name: "Miles Turner", Tier: TierWorker, Domain: "legal-compliance",
		Mission:          "Monitor trademark and IP conflicts in target markets.",
		Responsibilities: []string{"Scan registrations", "Flag conflicts"},
		Outputs:          []string{"IP watch report"}, Tools: []string{"market-intel"},
		Metrics: []string{"conflicts flagged"}, ReportsTo: "coord-legal",
	},
	{
		ID: "worker-vendor-risk", Name: "Anya Sokolova", Tier: TierWorker, Domain: "legal-compliance",
		Mission:          "Assess vendor security and compliance posture.",
		Responsibilities: []string{"Score vendor risk", "Chase questionnaires"},
		Outputs:          []string{"vendor risk matrix"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"vendors assessed"}, ReportsTo: "coord-legal",
	},

	// data-analytics
	{
		ID: "worker-dashboards", Name: "Ravi Iyer", Tier: TierWorker, Domain: "data-analytics",
		Mission:          "Build and maintain department KPI dashboards.",
		Responsibilities: []string{"Maintain dashboards", "Verify metric definitions"},
		Outputs:          []string{"dashboard updates"}, Tools: []string{"org-kpi-dashboard"},
		Metrics: []string{"dashboard freshness"}, ReportsTo: "coord-data",
	},
	{
		ID: "worker-etl-monitor", Name: "Celine Bauer", Tier: TierWorker, Domain: "data-analytics",
		Mission:          "Watch data pipelines and flag failures or drift.",
		Responsibilities: []string{"Monitor pipeline runs", "Diagnose failures"},
		Outputs:          []string{"pipeline status"}, Tools: []string{"system-status"},
		Metrics: []string{"pipeline uptime"}, ReportsTo: "coord-data",
	},
	{
		ID: "worker-ab-tests", Name: "Jamal Carter", Tier: TierWorker, Domain: "data-analytics",
		Mission:          "Design and read out experiments with correct statistics.",
		Responsibilities: []string{"Size experiments", "Write readouts"},
		Outputs:          []string{"experiment readout"}, Tools: []string{"org-kpi-dashboard", "llm-router"},
		Metrics: []string{"decisions per quarter"}, ReportsTo: "coord-data",
	},
	{
		ID: "worker-data-quality", Name: "Petra Novak", Tier: TierWorker, Domain: "data-analytics",
		Mission:          "Detect anomalies and schema drift in core tables.",
		Responsibilities: []string{"Run quality checks", "File data incidents"},
		Outputs:          []string{"quality report"}, Tools: []string{"system-status", "workflow-runner"},
		Metrics: []string{"data incidents"}, ReportsTo: "coord-data",
	},
	{
		ID: "worker-insights", Name: "Theo Jansen", Tier: TierWorker, Domain: "data-analytics",
		Mission:          "Publish a weekly digest of notable metric movements.",
		Responsibilities: []string{"Scan KPI movements", "Write insight notes"},
		Outputs:          []string{"insights digest"}, Tools: []string{"org-kpi-dashboard", "llm-router"},
		Metrics: []string{"insights actioned"}, ReportsTo: "coord-data",
	},

	// operations
	{
		ID: "worker-vendor-ops", Name: "Lena Fischer", Tier: TierWorker, Domain: "operations",
		Mission:          "Track vendor contracts, renewals, and spend.",
		Responsibilities: []string{"Maintain vendor register", "Flag upcoming renewals"},
		Outputs:          []string{"renewal calendar"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"renewals handled on time"}, ReportsTo: "coord-ops",
	},
	{
		ID: "worker-procurement", Name: "Oscar Vikander", Tier: TierWorker, Domain: "operations",
		Mission:          "Process purchase requests against budget policy.",
		Responsibilities: []string{"Validate requests", "Collect approvals"},
		Outputs:          []string{"purchase log"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"procurement cycle time"}, ReportsTo: "coord-ops",
	},
	{
		ID: "worker-facilities", Name: "Rosa Delgado", Tier: TierWorker, Domain: "operations",
		Mission:          "Coordinate office logistics and equipment requests.",
		Responsibilities: []string{"Track equipment requests", "Schedule maintenance"},
		Outputs:          []string{"facilities log"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"open requests"}, ReportsTo: "coord-ops",
	},
	{
		ID: "worker-scheduling", Name: "Elliot Hayes", Tier: TierWorker, Domain: "operations",
		Mission:          "Keep company calendars, standups, and reviews scheduled.",
		Responsibilities: []string{"Schedule recurring meetings", "Resolve conflicts"},
		Outputs:          []string{"schedule updates"}, Tools: []string{"workflow-runner"},
		Metrics: []string{"scheduling conflicts"}, ReportsTo: "coord-ops",
	},
	{
		ID: "worker-process-automation", Name: "Nadia Hassan", Tier: TierWorker, Domain: "operations",
		Mission:          "Identify and automate repetitive internal processes.",
		Responsibilities: []string{"Map manual processes", "Build automations"},
		Outputs:          []string{"automation proposals"}, Tools: []string{"workflow-runner", "execution-map"},
		Metrics: []string{"hours saved"}, ReportsTo: "coord-ops",
	},
}
