// internal/app/features/news/synthetic.go
package news

import (
	"math/rand"
	"time"

	"github.com/dalemusser/eventhub/internal/domain/models"
)

// Target article count; when the sources come up short the list is
// padded with evergreen filler so the page never looks empty.
const (
	targetArticles = 25
	paddingFloor   = 20
)

type filler struct {
	title       string
	description string
	url         string
	imageURL    string
	source      string
	author      string
	category    string
	ageHours    int
}

var fillerArticles = []filler{
	{
		title:       "Multimodal AI Models Keep Raising the Bar",
		description: "Vision, audio, and reasoning in a single model are changing how developers build assistants, with real-time analysis and stronger coding help.",
		url:         "https://openai.com/research/",
		imageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400&h=200&fit=crop",
		source:      "OpenAI Research",
		author:      "OpenAI Team",
		category:    "Artificial Intelligence",
		ageHours:    1,
	},
	{
		title:       "Next.js App Router Matures with Faster Builds",
		description: "Enhanced server components, smarter caching, and significantly faster build times continue to reshape React application architecture.",
		url:         "https://nextjs.org/blog",
		imageURL:    "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=200&fit=crop",
		source:      "Vercel",
		author:      "Next.js Team",
		category:    "Web Development",
		ageHours:    3,
	},
	{
		title:       "Quantum Processors Tackle Real Optimization Problems",
		description: "New quantum hardware solves classes of optimization problems orders of magnitude faster than classical supercomputers.",
		url:         "https://quantum.google/",
		imageURL:    "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=200&fit=crop",
		source:      "Google Quantum AI",
		author:      "Quantum Research Team",
		category:    "Quantum Computing",
		ageHours:    5,
	},
	{
		title:       "Ethereum Scaling Pushes Transaction Throughput Higher",
		description: "Rollup-centric scaling keeps driving throughput up while preserving decentralization guarantees.",
		url:         "https://ethereum.org/en/roadmap/",
		imageURL:    "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=400&h=200&fit=crop",
		source:      "Ethereum Foundation",
		author:      "Blockchain Developers",
		category:    "Blockchain",
		ageHours:    7,
	},
	{
		title:       "AI Pair Programming Moves Into the Whole Workspace",
		description: "Coding assistants now understand entire codebases and turn natural language descriptions into working features.",
		url:         "https://github.com/features/copilot",
		imageURL:    "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=400&h=200&fit=crop",
		source:      "GitHub",
		author:      "Microsoft AI Team",
		category:    "Developer Tools",
		ageHours:    9,
	},
	{
		title:       "Zero-Day Patched Across Cloud and IoT Fleets",
		description: "A critical security update addresses persistent threats targeting cloud infrastructure and connected devices.",
		url:         "https://www.cisa.gov/news-events/alerts",
		imageURL:    "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=400&h=200&fit=crop",
		source:      "CISA",
		author:      "Cybersecurity Team",
		category:    "Security",
		ageHours:    11,
	},
	{
		title:       "Tandem Solar Cells Set Another Efficiency Record",
		description: "Perovskite-silicon tandem cells keep breaking records, pushing solar below fossil fuel cost in more markets.",
		url:         "https://www.nrel.gov/news/",
		imageURL:    "https://images.unsplash.com/photo-1508514177221-188b1cf16e9d?w=400&h=200&fit=crop",
		source:      "NREL",
		author:      "Clean Energy Lab",
		category:    "Clean Technology",
		ageHours:    13,
	},
	{
		title:       "Spatial Computing Hardware Gets Its Second Generation",
		description: "Higher-resolution displays, on-device neural processing, and tighter AR/VR integration mark the next wave of headsets.",
		url:         "https://www.apple.com/apple-vision-pro/",
		imageURL:    "https://images.unsplash.com/photo-1593508512255-86ab42a8e620?w=400&h=200&fit=crop",
		source:      "Apple",
		author:      "Product Innovation Team",
		category:    "Mixed Reality",
		ageHours:    15,
	},
	{
		title:       "TypeScript Compilation Keeps Getting Faster",
		description: "Recent releases bring improved type inference, clearer error messages, and substantially faster compile times.",
		url:         "https://devblogs.microsoft.com/typescript/",
		imageURL:    "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=400&h=200&fit=crop",
		source:      "Microsoft",
		author:      "TypeScript Team",
		category:    "Programming Languages",
		ageHours:    8,
	},
	{
		title:       "5G Edge Networks Reshape IoT Architectures",
		description: "Ultra-low latency computing at the network edge is transforming IoT deployments and autonomous systems.",
		url:         "https://www.qualcomm.com/5g",
		imageURL:    "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=200&fit=crop",
		source:      "Qualcomm",
		author:      "5G Innovation Team",
		category:    "Network Technology",
		ageHours:    12,
	},
	{
		title:       "Brain-Computer Interfaces Hit New Control Milestones",
		description: "Neural implants demonstrate increasingly precise control of digital devices through thought alone.",
		url:         "https://neuralink.com/",
		imageURL:    "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=400&h=200&fit=crop",
		source:      "Neuralink",
		author:      "Neural Interface Research",
		category:    "Biotech",
		ageHours:    20,
	},
	{
		title:       "Satellite Constellations Close In on Gigabit Service",
		description: "Next-generation constellations promise global gigabit coverage with latency low enough for real-time applications.",
		url:         "https://www.starlink.com/",
		imageURL:    "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=400&h=200&fit=crop",
		source:      "SpaceX",
		author:      "Starlink Engineering",
		category:    "Space Technology",
		ageHours:    18,
	},
	{
		title:       "Rust Adoption Accelerates in Systems Programming",
		description: "Memory-safe systems code is moving from experiment to default as more kernels, browsers, and cloud services ship Rust components.",
		url:         "https://blog.rust-lang.org/",
		imageURL:    "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=400&h=200&fit=crop",
		source:      "Rust Foundation",
		author:      "Rust Team",
		category:    "Programming Languages",
		ageHours:    2,
	},
	{
		title:       "WebAssembly Expands Beyond the Browser",
		description: "Server-side WASM runtimes bring sandboxed, near-native plugins to databases, proxies, and edge platforms.",
		url:         "https://webassembly.org/",
		imageURL:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=200&fit=crop",
		source:      "Bytecode Alliance",
		author:      "WASM Working Group",
		category:    "Web Development",
		ageHours:    4,
	},
	{
		title:       "Open-Weight Language Models Narrow the Gap",
		description: "Freely downloadable models now match proprietary systems on many benchmarks, shifting how teams deploy AI on their own hardware.",
		url:         "https://huggingface.co/models",
		imageURL:    "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?w=400&h=200&fit=crop",
		source:      "Hugging Face",
		author:      "Open Source AI Community",
		category:    "Artificial Intelligence",
		ageHours:    6,
	},
	{
		title:       "Kubernetes Platforms Simplify Multi-Cluster Operations",
		description: "Fleet management tooling is making dozens of clusters as easy to operate as one, with unified policy and rollout controls.",
		url:         "https://kubernetes.io/blog/",
		imageURL:    "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?w=400&h=200&fit=crop",
		source:      "CNCF",
		author:      "Kubernetes SIG",
		category:    "Cloud Native",
		ageHours:    10,
	},
	{
		title:       "Passkeys Push Passwords Toward Retirement",
		description: "Major platforms now sync passkeys across devices, and large consumer services report passwordless sign-in as the default path.",
		url:         "https://fidoalliance.org/passkeys/",
		imageURL:    "https://images.unsplash.com/photo-1614064641938-3bbee52942c7?w=400&h=200&fit=crop",
		source:      "FIDO Alliance",
		author:      "Identity Standards Group",
		category:    "Security",
		ageHours:    14,
	},
	{
		title:       "RISC-V Chips Reach Mainstream Devices",
		description: "The open instruction set is shipping in laptops, accelerators, and automotive controllers as the toolchain ecosystem matures.",
		url:         "https://riscv.org/news/",
		imageURL:    "https://images.unsplash.com/photo-1555617981-dac3880eac6e?w=400&h=200&fit=crop",
		source:      "RISC-V International",
		author:      "Hardware Engineering",
		category:    "Hardware",
		ageHours:    16,
	},
	{
		title:       "Postgres Extensions Blur the Line with Specialized Databases",
		description: "Vector search, time series, and columnar storage extensions keep pulling workloads back onto plain Postgres.",
		url:         "https://www.postgresql.org/about/newsarchive/",
		imageURL:    "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=400&h=200&fit=crop",
		source:      "PostgreSQL",
		author:      "Database Community",
		category:    "Databases",
		ageHours:    17,
	},
	{
		title:       "eBPF Observability Goes Mainstream",
		description: "Kernel-level tracing without code changes is becoming the standard way to watch production systems in real time.",
		url:         "https://ebpf.io/",
		imageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=400&h=200&fit=crop",
		source:      "eBPF Foundation",
		author:      "Observability Team",
		category:    "Infrastructure",
		ageHours:    19,
	},
	{
		title:       "Robotics Foundation Models Learn Across Embodiments",
		description: "A single policy trained on diverse robot data now transfers manipulation skills between arms, grippers, and humanoids.",
		url:         "https://deepmind.google/discover/blog/",
		imageURL:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=400&h=200&fit=crop",
		source:      "DeepMind",
		author:      "Robotics Research",
		category:    "Robotics",
		ageHours:    21,
	},
	{
		title:       "Serverless Databases Cut Cold Starts to Milliseconds",
		description: "Scale-to-zero storage engines now resume fast enough for interactive apps, changing the economics of small services.",
		url:         "https://planetscale.com/blog",
		imageURL:    "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=400&h=200&fit=crop",
		source:      "PlanetScale",
		author:      "Platform Engineering",
		category:    "Databases",
		ageHours:    22,
	},
	{
		title:       "Matter Standard Finally Unifies the Smart Home",
		description: "Cross-vendor device pairing over Thread and Wi-Fi is shipping broadly, ending years of incompatible ecosystems.",
		url:         "https://csa-iot.org/all-solutions/matter/",
		imageURL:    "https://images.unsplash.com/photo-1558002038-1055907df827?w=400&h=200&fit=crop",
		source:      "Connectivity Standards Alliance",
		author:      "IoT Working Group",
		category:    "Internet of Things",
		ageHours:    23,
	},
	{
		title:       "GPU Supply Improves as Inference Moves to Custom Silicon",
		description: "Purpose-built inference accelerators are absorbing production AI traffic, easing pressure on general-purpose GPU fleets.",
		url:         "https://www.anandtech.com/",
		imageURL:    "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=400&h=200&fit=crop",
		source:      "AnandTech",
		author:      "Silicon Analysis",
		category:    "Hardware",
		ageHours:    24,
	},
	{
		title:       "Distributed SQL Engines Close the Gap with Single-Node Speed",
		description: "Consensus and storage layer improvements bring globally replicated SQL within a few percent of local performance.",
		url:         "https://www.cockroachlabs.com/blog/",
		imageURL:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=400&h=200&fit=crop",
		source:      "Cockroach Labs",
		author:      "Distributed Systems Team",
		category:    "Databases",
		ageHours:    25,
	},
}

// syntheticArticles returns shuffled filler entries, at most n, with
// publication times staggered into the recent past.
func syntheticArticles(n int, now time.Time) []models.Article {
	shuffled := make([]filler, len(fillerArticles))
	copy(shuffled, fillerArticles)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	if n < 0 {
		n = 0
	}

	articles := make([]models.Article, 0, n)
	for _, f := range shuffled[:n] {
		articles = append(articles, models.Article{
			Title:       f.title,
			Description: f.description,
			URL:         f.url,
			ImageURL:    f.imageURL,
			PublishedAt: now.Add(-time.Duration(f.ageHours) * time.Hour),
			Source:      f.source,
			Author:      f.author,
			Category:    f.category,
		})
	}
	return articles
}

// fallbackArticles is the last resort when every source fails and no
// cache exists.
func fallbackArticles(now time.Time) []models.Article {
	return []models.Article{{
		Title:       "Tech News Temporarily Unavailable",
		Description: "We're experiencing technical difficulties fetching the latest news. Please try again later.",
		URL:         "https://github.com/trending",
		ImageURL:    imageHackerNews,
		PublishedAt: now,
		Source:      "EventHub",
		Author:      "System",
	}}
}
