package vocabulary

var defaultSkills = []string{
	// programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
	"swift", "kotlin", "go", "rust", "scala", "r", "matlab", "perl", "sql",
	"shell", "bash", "haskell", "elixir", "dart", "lua",

	// web
	"html", "css", "react", "angular", "vue", "node.js", "next.js", "express",
	"django", "flask", "spring", "asp.net", "jquery", "bootstrap", "tailwind",
	"sass", "webpack", "vite", "rest api", "svelte", "redux", "fastapi",
	"spring boot", "ruby on rails",

	// databases
	"mysql", "postgresql", "postgres", "mongodb", "oracle", "redis", "cassandra",
	"dynamodb", "sqlite", "mariadb", "elasticsearch", "neo4j", "database",
	"snowflake", "bigquery",

	// cloud and devops
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "terraform", "ansible", "ci/cd", "git", "github", "gitlab",
	"bitbucket", "linux", "unix", "helm", "prometheus", "grafana",

	// data science and machine learning
	"machine learning", "deep learning", "neural networks", "tensorflow",
	"pytorch", "keras", "scikit-learn", "sklearn", "pandas", "numpy",
	"matplotlib", "data analysis", "data visualization", "nlp",
	"computer vision", "statistics", "ai", "artificial intelligence",
	"tableau", "power bi", "excel", "spark", "hadoop", "airflow",

	// soft skills
	"communication", "leadership", "teamwork", "problem solving",
	"critical thinking", "time management", "adaptability", "creativity",
	"creative", "collaboration", "presentation", "analytical",
	"organizational", "project management",

	// methodologies and practices
	"agile", "scrum", "kanban", "waterfall", "devops", "tdd", "bdd",
	"microservices", "api", "rest", "graphql", "oauth", "jwt",

	// tools
	"jira", "confluence", "slack", "vs code", "intellij", "eclipse",
	"postman", "swagger", "figma", "adobe", "photoshop",
}
