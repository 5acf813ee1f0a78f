// Package taxonomy 维护技能词表：按类别组织的规范化技能、证书与行业名称。
// 词表为只读数据，匹配时以这里的写法作为规范形式返回。
package taxonomy

// TechnicalSkills 技术技能
var TechnicalSkills = []string{
	// 编程语言
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Go", "Rust", "Swift",
	"Kotlin", "PHP", "Ruby", "Scala", "R", "MATLAB", "Perl", "Shell Scripting", "PowerShell",

	// Web技术
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express.js", "Next.js", "Nuxt.js",
	"Django", "Flask", "FastAPI", "Spring", "Spring Boot", "ASP.NET", "Laravel", "Ruby on Rails",
	"Bootstrap", "Tailwind CSS", "SASS", "SCSS", "jQuery", "Redux", "Vuex", "GraphQL", "REST API",

	// 数据库
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "SQL Server", "Redis",
	"Cassandra", "DynamoDB", "Neo4j", "Elasticsearch", "InfluxDB",

	// 云平台
	"AWS", "Azure", "Google Cloud Platform", "GCP", "Docker", "Kubernetes", "Jenkins",
	"Terraform", "Ansible", "CloudFormation", "Serverless", "Lambda", "EC2", "S3",

	// 数据科学与机器学习
	"Machine Learning", "Deep Learning", "Natural Language Processing", "NLP", "Computer Vision",
	"TensorFlow", "PyTorch", "Scikit-learn", "Keras", "Pandas", "NumPy", "Matplotlib",
	"Seaborn", "Plotly", "Jupyter", "Apache Spark", "Hadoop", "Tableau", "Power BI",

	// DevOps与工具
	"Git", "GitHub", "GitLab", "Bitbucket", "CI/CD", "Agile", "Scrum", "JIRA", "Confluence",
	"Linux", "Unix", "Windows Server", "VMware", "VirtualBox", "Nginx", "Apache",

	// 移动开发
	"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic", "Cordova",

	// 测试
	"Unit Testing", "Integration Testing", "Selenium", "Jest", "Pytest", "JUnit", "Cypress",
	"Test Automation", "Performance Testing", "Load Testing",

	// 安全
	"Cybersecurity", "Information Security", "Network Security", "Penetration Testing",
	"Vulnerability Assessment", "OWASP", "SSL/TLS", "OAuth", "JWT",
}

// SoftSkills 软技能
var SoftSkills = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving", "Critical Thinking",
	"Project Management", "Time Management", "Adaptability", "Creativity", "Initiative",
	"Analytical Thinking", "Decision Making", "Conflict Resolution", "Negotiation",
	"Presentation Skills", "Public Speaking", "Writing Skills", "Research Skills",
	"Customer Service", "Sales", "Marketing", "Strategic Planning", "Innovation",
}

// Certifications 证书
var Certifications = []string{
	"AWS Certified Solutions Architect", "AWS Certified Developer", "Azure Fundamentals",
	"Google Cloud Professional", "PMP", "Scrum Master", "CISSP", "CompTIA Security+",
	"Cisco CCNA", "Red Hat Certified", "Oracle Certified", "Microsoft Certified",
	"Salesforce Certified", "Six Sigma", "ITIL", "Agile Certified",
}

// Industries 行业方向
var Industries = []string{
	"Software Development", "Data Science", "Machine Learning", "Artificial Intelligence",
	"Web Development", "Mobile Development", "DevOps", "Cloud Computing", "Cybersecurity",
	"Database Administration", "Network Administration", "IT Support", "Quality Assurance",
	"Product Management", "Project Management", "Business Analysis", "Digital Marketing",
	"E-commerce", "FinTech", "HealthTech", "EdTech", "Gaming", "Blockchain",
}

// All 按固定顺序返回全部词表条目
func All() []string {
	all := make([]string, 0, len(TechnicalSkills)+len(SoftSkills)+len(Certifications)+len(Industries))
	all = append(all, TechnicalSkills...)
	all = append(all, SoftSkills...)
	all = append(all, Certifications...)
	all = append(all, Industries...)
	return all
}

// ByCategory 按类别返回词表
func ByCategory() map[string][]string {
	return map[string][]string{
		"technical":      TechnicalSkills,
		"soft":           SoftSkills,
		"certifications": Certifications,
		"industries":     Industries,
	}
}
