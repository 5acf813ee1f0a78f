package recommend

// atsTips ATS友好性建议池，格式建议和ATS优化建议都从这里抽样
var atsTips = []string{
	"Use standard section headers like 'EXPERIENCE', 'EDUCATION', 'SKILLS'",
	"Save your resume as a PDF to preserve formatting",
	"Avoid using tables, graphics, or complex formatting",
	"Include keywords from the job description naturally in your content",
	"Use a clean, professional font like Arial or Calibri",
	"Keep your resume to 1-2 pages maximum",
	"Include your contact information at the top",
	"Use bullet points to highlight achievements and responsibilities",
}

// 按得分档位选择的内容改进建议
var (
	lowScoreImprovements = []string{
		"Add more specific technical skills relevant to the role",
		"Include quantified achievements and results in your experience",
		"Expand your work experience descriptions with relevant details",
		"Add relevant certifications or training programs",
		"Include keywords from the job description naturally",
	}
	mediumScoreImprovements = []string{
		"Fine-tune your skill descriptions to better match job requirements",
		"Add more specific examples of your technical expertise",
		"Include relevant projects that demonstrate your capabilities",
		"Optimize your summary or objective statement",
	}
	highScoreImprovements = []string{
		"Your resume is well-aligned! Consider minor keyword optimization",
		"Add any recently acquired skills or certifications",
		"Ensure your contact information is up to date",
	}
)
