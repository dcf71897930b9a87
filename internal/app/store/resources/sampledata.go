package resourcestore

import "github.com/dalemusser/learnhub/internal/domain/models"

// SampleResources is the fixed demonstration dataset inserted by
// SeedIfEmpty when the catalog starts out empty.
func SampleResources() []models.Resource {
	return []models.Resource{
		{
			Title:         "Introduction to Computer Science",
			Author:        "Dr. John Smith",
			Type:          "ebook",
			Description:   "A comprehensive introduction to the fundamentals of computer science, covering algorithms, data structures, and programming concepts.",
			FileName:      "intro-cs.pdf",
			FileSize:      "2.5 MB",
			DownloadCount: 1234,
			Tags:          []string{"computer science", "programming", "algorithms"},
		},
		{
			Title:         "Advanced Mathematics for Engineers",
			Author:        "Prof. Maria Garcia",
			Type:          "ebook",
			Description:   "Advanced mathematical concepts essential for engineering students, including calculus, linear algebra, and differential equations.",
			FileName:      "adv-math.pdf",
			FileSize:      "4.2 MB",
			DownloadCount: 856,
			Tags:          []string{"mathematics", "engineering", "calculus"},
		},
		{
			Title:         "Data Structures and Algorithms",
			Author:        "Dr. Alan Chen",
			Type:          "lecture-notes",
			Description:   "Comprehensive lecture notes covering fundamental data structures including arrays, linked lists, trees, graphs, and common algorithms.",
			FileName:      "dsa-notes.pdf",
			FileSize:      "1.8 MB",
			DownloadCount: 2341,
			Tags:          []string{"data structures", "algorithms", "programming"},
		},
		{
			Title:         "Operating Systems Concepts",
			Author:        "Dr. Sarah Williams",
			Type:          "lecture-notes",
			Description:   "Detailed notes on operating system concepts including process management, memory management, and file systems.",
			FileName:      "os-notes.pdf",
			FileSize:      "3.1 MB",
			DownloadCount: 1567,
			Tags:          []string{"operating systems", "computer science"},
		},
		{
			Title:         "Machine Learning in Healthcare",
			Author:        "Dr. Emily Johnson",
			Type:          "research-paper",
			Description:   "A groundbreaking research paper exploring the applications of machine learning algorithms in healthcare diagnostics and treatment planning.",
			FileName:      "ml-healthcare.pdf",
			FileSize:      "892 KB",
			DownloadCount: 432,
			Tags:          []string{"machine learning", "healthcare", "AI"},
		},
		{
			Title:         "Quantum Computing Fundamentals",
			Author:        "Prof. Robert Zhang",
			Type:          "research-paper",
			Description:   "An exploration of quantum computing principles, qubits, quantum gates, and their potential applications in cryptography.",
			FileName:      "quantum-computing.pdf",
			FileSize:      "1.2 MB",
			DownloadCount: 678,
			Tags:          []string{"quantum computing", "physics", "cryptography"},
		},
		{
			Title:         "Web Development Masterclass",
			Author:        "Sarah Tech Academy",
			Type:          "multimedia",
			Description:   "A comprehensive video course covering HTML, CSS, JavaScript, React, and modern web development practices.",
			FileName:      "webdev-course.mp4",
			FileSize:      "2.1 GB",
			DownloadCount: 3456,
			Tags:          []string{"web development", "javascript", "react"},
		},
		{
			Title:         "Database Design Principles",
			Author:        "Prof. Michael Brown",
			Type:          "multimedia",
			Description:   "Audio lectures explaining relational database design, normalization, SQL queries, and database optimization techniques.",
			FileName:      "db-lectures.mp3",
			FileSize:      "456 MB",
			DownloadCount: 892,
			Tags:          []string{"database", "SQL", "design"},
		},
		{
			Title:         "Artificial Intelligence: A Modern Approach",
			Author:        "Stuart Russell & Peter Norvig",
			Type:          "ebook",
			Description:   "The definitive guide to artificial intelligence, covering search algorithms, knowledge representation, machine learning, and more.",
			FileName:      "ai-modern-approach.pdf",
			FileSize:      "8.5 MB",
			DownloadCount: 4521,
			Tags:          []string{"artificial intelligence", "machine learning", "algorithms"},
		},
		{
			Title:         "Software Engineering Best Practices",
			Author:        "Dr. Lisa Anderson",
			Type:          "lecture-notes",
			Description:   "Lecture notes covering software development methodologies, testing, version control, and project management techniques.",
			FileName:      "se-practices.pdf",
			FileSize:      "2.3 MB",
			DownloadCount: 1892,
			Tags:          []string{"software engineering", "testing", "agile"},
		},
		{
			Title:         "Climate Change Impact Analysis",
			Author:        "Environmental Research Group",
			Type:          "research-paper",
			Description:   "A comprehensive study analyzing the environmental and economic impacts of climate change on global ecosystems.",
			FileName:      "climate-analysis.pdf",
			FileSize:      "1.5 MB",
			DownloadCount: 567,
			Tags:          []string{"climate change", "environment", "research"},
		},
		{
			Title:         "Python Programming for Data Science",
			Author:        "Code Academy Pro",
			Type:          "multimedia",
			Description:   "Video tutorial series teaching Python programming with focus on data analysis, pandas, numpy, and visualization libraries.",
			FileName:      "python-ds.mp4",
			FileSize:      "1.8 GB",
			DownloadCount: 2789,
			Tags:          []string{"python", "data science", "programming"},
		},
	}
}
