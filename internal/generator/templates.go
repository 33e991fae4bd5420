package generator

// Template is one reusable incident scenario for a company.
type Template struct {
	Title            string
	Description      string
	Severity         string
	TimeLimitMinutes int
	AffectedServices []string
	ErrorLogs        string
	CodebaseContext  string
}

// CompanyProfile bundles the simulation context for one company: display
// metadata plus the incident templates drawn from during generation.
type CompanyProfile struct {
	Name                 string
	Slug                 string
	Description          string
	Industry             string
	CompanySize          string
	TechStack            []string
	FocusAreas           []string
	CommonServices       []string
	IncidentFrequency    float64
	SeverityDistribution map[string]float64
	WorkHoursStart       int
	WorkHoursEnd         int
	Incidents            []Template
}

var monitoringDashboards = []string{
	"https://monitoring.example.com/dashboard/overview",
	"https://grafana.company.com/d/incident-response",
	"https://datadog.com/dashboard/incidents",
	"https://newrelic.com/dashboard/alerts",
	"https://splunk.company.com/en-US/app/search/incident_monitoring",
}

var defaultProfile = CompanyProfile{
	Name:              "Generic",
	Slug:              "generic",
	Description:       "Generic web company profile used when no specific company matches.",
	Industry:          "Technology",
	CompanySize:       "Mid",
	TechStack:         []string{"Python", "PostgreSQL", "Redis"},
	FocusAreas:        []string{"web-services", "api", "database"},
	CommonServices:    []string{"api", "database", "cache", "auth"},
	IncidentFrequency: 0.1,
	SeverityDistribution: map[string]float64{
		"P0": 0.15, "P1": 0.35, "P2": 0.4, "P3": 0.1,
	},
	WorkHoursStart: 9,
	WorkHoursEnd:   17,
	Incidents: []Template{
		{
			Title:            "API Rate Limiting Issues",
			Description:      "API returning 429 errors. Rate limiting configuration needs adjustment.",
			Severity:         "P1",
			TimeLimitMinutes: 30,
			AffectedServices: []string{"api-gateway", "rate-limiter"},
			ErrorLogs: `2024-01-15 10:15:22 ERROR [api-gateway] Rate limit exceeded: 1000 req/min
2024-01-15 10:15:23 ERROR [rate-limiter] Token bucket empty`,
			CodebaseContext: "Rate limiting configuration in api_config.py",
		},
		{
			Title:            "Database Connection Pool Exhaustion",
			Description:      "Application unable to connect to database. Connection pool at capacity.",
			Severity:         "P0",
			TimeLimitMinutes: 25,
			AffectedServices: []string{"database", "connection-pool"},
			ErrorLogs: `2024-01-15 09:30:15 ERROR [database] Connection pool exhausted
2024-01-15 09:30:16 ERROR [app] Failed to acquire database connection`,
			CodebaseContext: "Database configuration in db_config.py",
		},
	},
}

var companyProfiles = []CompanyProfile{
	{
		Name:              "Amazon",
		Slug:              "amazon",
		Description:       "Global e-commerce and cloud computing giant. Focus on AWS services, distributed systems, and massive scale.",
		Industry:          "Technology",
		CompanySize:       "Enterprise",
		TechStack:         []string{"AWS", "Java", "Python", "DynamoDB", "Lambda", "S3"},
		FocusAreas:        []string{"distributed-systems", "aws-services", "scalability"},
		CommonServices:    []string{"EC2", "S3", "Lambda", "RDS", "DynamoDB", "CloudFront"},
		IncidentFrequency: 0.15,
		SeverityDistribution: map[string]float64{
			"P0": 0.1, "P1": 0.3, "P2": 0.5, "P3": 0.1,
		},
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
		Incidents: []Template{
			{
				Title:            "S3 Bucket Access Denied",
				Description:      "Multiple services reporting 403 errors when accessing S3 buckets. Customer uploads failing.",
				Severity:         "P1",
				TimeLimitMinutes: 30,
				AffectedServices: []string{"user-uploads", "media-processing", "cdn"},
				ErrorLogs: `2024-01-15 10:30:15 ERROR [s3-client] AccessDenied: Access Denied
2024-01-15 10:30:16 ERROR [upload-service] Failed to store file: s3://bucket/uploads/file.jpg
2024-01-15 10:30:17 ERROR [media-processor] Cannot access S3 bucket: access denied`,
				CodebaseContext: "S3Client class in aws_utils.py handles bucket operations",
			},
			{
				Title:            "Lambda Cold Start Storm",
				Description:      "API response times spiking due to Lambda cold starts. 95th percentile latency > 10s.",
				Severity:         "P2",
				TimeLimitMinutes: 45,
				AffectedServices: []string{"api-gateway", "user-service", "notification-service"},
				ErrorLogs: `2024-01-15 11:15:22 WARN [lambda-runtime] Cold start detected: 8.5s init time
2024-01-15 11:15:23 WARN [api-gateway] Request timeout after 10s
2024-01-15 11:15:24 ERROR [user-service] Function timeout exceeded`,
				CodebaseContext: "Lambda functions in /src/lambda/ directory",
			},
		},
	},
	{
		Name:              "Google",
		Slug:              "google",
		Description:       "Search engine and technology company. Focus on search algorithms, ML systems, and global infrastructure.",
		Industry:          "Technology",
		CompanySize:       "Enterprise",
		TechStack:         []string{"C++", "Python", "Go", "Kubernetes", "TensorFlow", "BigQuery"},
		FocusAreas:        []string{"search", "ml", "distributed-systems", "big-data"},
		CommonServices:    []string{"Search", "Gmail", "YouTube", "Maps", "Ads"},
		IncidentFrequency: 0.12,
		SeverityDistribution: map[string]float64{
			"P0": 0.15, "P1": 0.25, "P2": 0.5, "P3": 0.1,
		},
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
		Incidents: []Template{
			{
				Title:            "Search Index Corruption",
				Description:      "Search results returning outdated or missing content. Index replication failing.",
				Severity:         "P0",
				TimeLimitMinutes: 60,
				AffectedServices: []string{"search-indexer", "query-processor", "result-cache"},
				ErrorLogs: `2024-01-15 09:45:12 ERROR [indexer] Failed to replicate index shard 42
2024-01-15 09:45:13 ERROR [query-processor] Index checksum mismatch detected
2024-01-15 09:45:14 WARN [search-api] Returning stale results due to index issues`,
				CodebaseContext: "Index management in /search/index/ directory",
			},
			{
				Title:            "ML Model Performance Degradation",
				Description:      "Recommendation accuracy dropping by 15%. Model serving latency increased.",
				Severity:         "P1",
				TimeLimitMinutes: 90,
				AffectedServices: []string{"ml-serving", "recommendation-engine", "feature-store"},
				ErrorLogs: `2024-01-15 14:20:33 WARN [ml-serving] Model prediction time: 245ms (normally 80ms)
2024-01-15 14:20:34 ERROR [recommendation-engine] Feature vector missing key attributes
2024-01-15 14:20:35 WARN [feature-store] Cache hit rate dropped to 45%`,
				CodebaseContext: "ML models in /ml/models/ and serving code in /ml/serving/",
			},
		},
	},
	{
		Name:              "Meta",
		Slug:              "meta",
		Description:       "Social media and technology company. Focus on real-time systems, social platforms, and mobile applications.",
		Industry:          "Technology",
		CompanySize:       "Enterprise",
		TechStack:         []string{"React", "PHP", "Python", "Hack", "C++", "GraphQL"},
		FocusAreas:        []string{"social-platform", "real-time", "mobile", "content-moderation"},
		CommonServices:    []string{"NewsFeed", "Messenger", "Instagram", "WhatsApp"},
		IncidentFrequency: 0.18,
		SeverityDistribution: map[string]float64{
			"P0": 0.2, "P1": 0.35, "P2": 0.4, "P3": 0.05,
		},
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
		Incidents: []Template{
			{
				Title:            "News Feed Algorithm Outage",
				Description:      "Users seeing empty feeds or outdated posts. Content ranking service down.",
				Severity:         "P0",
				TimeLimitMinutes: 45,
				AffectedServices: []string{"feed-service", "ranking-engine", "content-cache"},
				ErrorLogs: `2024-01-15 16:30:45 ERROR [feed-service] Failed to fetch user timeline
2024-01-15 16:30:46 ERROR [ranking-engine] Service unavailable: connection timeout
2024-01-15 16:30:47 WARN [content-cache] Cache miss rate: 95% (normal: 15%)`,
				CodebaseContext: "Feed generation logic in /src/feed/ directory",
			},
			{
				Title:            "Real-time Message Delivery Failure",
				Description:      "Messenger messages not being delivered in real-time. WebSocket connections dropping.",
				Severity:         "P1",
				TimeLimitMinutes: 30,
				AffectedServices: []string{"messenger-api", "websocket-gateway", "notification-service"},
				ErrorLogs: `2024-01-15 18:15:22 ERROR [websocket-gateway] Connection pool exhausted
2024-01-15 18:15:23 ERROR [messenger-api] Message delivery timeout: 30s
2024-01-15 18:15:24 WARN [notification-service] Push notification queue backing up`,
				CodebaseContext: "Real-time messaging in /src/messaging/ directory",
			},
		},
	},
	{
		Name:              "Uber",
		Slug:              "uber",
		Description:       "Ridesharing and delivery platform. Focus on location services, matching algorithms, and real-time systems.",
		Industry:          "Transportation",
		CompanySize:       "Large",
		TechStack:         []string{"Python", "Go", "Java", "PostgreSQL", "Redis", "Kafka"},
		FocusAreas:        []string{"location-services", "matching-algorithms", "real-time", "mobile"},
		CommonServices:    []string{"Matching", "Location", "Payment", "Driver", "Rider"},
		IncidentFrequency: 0.2,
		SeverityDistribution: map[string]float64{
			"P0": 0.25, "P1": 0.4, "P2": 0.3, "P3": 0.05,
		},
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
		Incidents: []Template{
			{
				Title:            "Driver-Rider Matching Algorithm Failure",
				Description:      "Riders unable to find drivers. Matching service returning empty results.",
				Severity:         "P0",
				TimeLimitMinutes: 25,
				AffectedServices: []string{"matching-service", "location-service", "driver-api"},
				ErrorLogs: `2024-01-15 19:45:12 ERROR [matching-service] No drivers found in 5km radius
2024-01-15 19:45:13 ERROR [location-service] GPS accuracy below threshold
2024-01-15 19:45:14 WARN [driver-api] Driver location updates delayed by 2+ minutes`,
				CodebaseContext: "Matching algorithms in /src/matching/ directory",
			},
			{
				Title:            "Surge Pricing Calculation Error",
				Description:      "Surge pricing showing incorrect multipliers. Revenue impact detected.",
				Severity:         "P1",
				TimeLimitMinutes: 40,
				AffectedServices: []string{"pricing-service", "demand-calculator", "payment-processor"},
				ErrorLogs: `2024-01-15 20:30:15 ERROR [pricing-service] Surge multiplier calculation failed
2024-01-15 20:30:16 WARN [demand-calculator] Historical data missing for time window
2024-01-15 20:30:17 ERROR [payment-processor] Price validation failed: 300% surge`,
				CodebaseContext: "Pricing logic in /src/pricing/ directory",
			},
		},
	},
	{
		Name:              "Coinbase",
		Slug:              "coinbase",
		Description:       "Cryptocurrency exchange platform. Focus on trading systems, security, and financial compliance.",
		Industry:          "Fintech",
		CompanySize:       "Large",
		TechStack:         []string{"Go", "Python", "React", "PostgreSQL", "Redis", "Docker"},
		FocusAreas:        []string{"trading-systems", "security", "blockchain", "financial-compliance"},
		CommonServices:    []string{"Trading", "Wallet", "Exchange", "Security", "Compliance"},
		IncidentFrequency: 0.08,
		SeverityDistribution: map[string]float64{
			"P0": 0.3, "P1": 0.4, "P2": 0.25, "P3": 0.05,
		},
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
		Incidents: []Template{
			{
				Title:            "Trading Engine Performance Degradation",
				Description:      "Order execution delays causing slippage. Trade volume dropping.",
				Severity:         "P0",
				TimeLimitMinutes: 20,
				AffectedServices: []string{"trading-engine", "order-book", "market-data"},
				ErrorLogs: `2024-01-15 13:25:33 ERROR [trading-engine] Order execution time: 2.5s (SLA: 100ms)
2024-01-15 13:25:34 WARN [order-book] Depth calculation timeout
2024-01-15 13:25:35 ERROR [market-data] Price feed lag: 15 seconds`,
				CodebaseContext: "Trading engine in /src/trading/ directory",
			},
			{
				Title:            "Wallet Balance Sync Issue",
				Description:      "User balances showing incorrect amounts. Blockchain sync failing.",
				Severity:         "P1",
				TimeLimitMinutes: 60,
				AffectedServices: []string{"wallet-service", "blockchain-sync", "balance-calculator"},
				ErrorLogs: `2024-01-15 15:40:22 ERROR [blockchain-sync] Failed to sync block 18543291
2024-01-15 15:40:23 ERROR [wallet-service] Balance calculation timeout
2024-01-15 15:40:24 WARN [balance-calculator] Inconsistent state detected`,
				CodebaseContext: "Wallet management in /src/wallet/ directory",
			},
		},
	},
	{
		Name:              "Shopify",
		Slug:              "shopify",
		Description:       "E-commerce platform for online stores. Focus on payment processing, inventory management, and scalability.",
		Industry:          "E-commerce",
		CompanySize:       "Large",
		TechStack:         []string{"Ruby", "JavaScript", "React", "MySQL", "Redis", "Kubernetes"},
		FocusAreas:        []string{"e-commerce", "payment-processing", "inventory", "scalability"},
		CommonServices:    []string{"Checkout", "Inventory", "Payment", "Shipping", "Analytics"},
		IncidentFrequency: 0.16,
		SeverityDistribution: map[string]float64{
			"P0": 0.2, "P1": 0.35, "P2": 0.4, "P3": 0.05,
		},
		WorkHoursStart: 9,
		WorkHoursEnd:   17,
		Incidents: []Template{
			{
				Title:            "Checkout Service 500 Errors",
				Description:      "Customers unable to complete purchases. Payment processing failing.",
				Severity:         "P0",
				TimeLimitMinutes: 30,
				AffectedServices: []string{"checkout-service", "payment-gateway", "order-processor"},
				ErrorLogs: `2024-01-15 11:20:15 ERROR [checkout-service] Internal server error during payment
2024-01-15 11:20:16 ERROR [payment-gateway] Connection timeout to Stripe API
2024-01-15 11:20:17 WARN [order-processor] Failed to create order: payment validation error`,
				CodebaseContext: "Checkout flow in /src/checkout/ directory",
			},
			{
				Title:            "Inventory Sync Delays",
				Description:      "Product availability showing stale data. Inventory updates delayed.",
				Severity:         "P2",
				TimeLimitMinutes: 60,
				AffectedServices: []string{"inventory-service", "product-catalog", "sync-engine"},
				ErrorLogs: `2024-01-15 14:35:22 WARN [inventory-service] Sync lag: 45 minutes
2024-01-15 14:35:23 ERROR [sync-engine] Failed to update 1,247 products
2024-01-15 14:35:24 WARN [product-catalog] Stale inventory data detected`,
				CodebaseContext: "Inventory management in /src/inventory/ directory",
			},
		},
	},
}

// Profiles returns all built-in company profiles. Callers must not mutate
// the returned slice.
func Profiles() []CompanyProfile {
	return companyProfiles
}

// ProfileFor returns the profile for a company slug, falling back to the
// generic profile when the company is unknown.
func ProfileFor(slug string) CompanyProfile {
	for _, p := range companyProfiles {
		if p.Slug == slug {
			return p
		}
	}
	return defaultProfile
}
