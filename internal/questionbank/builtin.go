package questionbank

import "github.com/prepforge/interview-engine/internal/models"

// builtinQuestions is the offline question table. Within a slot, questions
// are ordered from more straightforward to more involved; the provider's
// difficulty-based trimming relies on that ordering.
var builtinQuestions = map[string]map[string]map[models.Difficulty][]string{
	"python": {
		"data structures": {
			models.DifficultyEasy: {
				"What are the main data structures in Python and when would you use each one?",
				"Could you explain the difference between lists and tuples in Python?",
			},
			models.DifficultyMedium: {
				"Can you explain the performance differences between lists and dictionaries in Python?",
				"How would you implement a custom data structure for an LRU cache in Python?",
			},
			models.DifficultyHard: {
				"How would you implement a memory-efficient data structure for a large dataset in Python?",
				"Could you describe how you would implement a custom B-tree in Python and when you would use it?",
			},
		},
		"pandas": {
			models.DifficultyEasy: {
				"What are the core data structures in pandas and what are they used for?",
				"How do you handle missing data in pandas?",
			},
			models.DifficultyMedium: {
				"Could you explain the concept of vectorization in pandas and why it's important for performance?",
				"How would you optimize pandas operations when working with large datasets?",
			},
			models.DifficultyHard: {
				"Can you explain how you would implement a custom pandas extension array for specialized data?",
				"What strategies would you use to parallelize pandas operations for multi-core processing?",
			},
		},
		"object-oriented programming": {
			models.DifficultyEasy: {
				"Could you explain the basic principles of OOP in Python?",
				"What are class methods, instance methods, and static methods in Python?",
			},
			models.DifficultyMedium: {
				"How would you implement inheritance and method overriding in Python?",
				"Can you explain metaclasses in Python and provide a practical example?",
			},
			models.DifficultyHard: {
				"Could you explain the descriptor protocol in Python and when you would use it?",
				"How would you implement a custom context manager in Python?",
			},
		},
	},
	"sql": {
		"joins": {
			models.DifficultyEasy: {
				"Could you explain the different types of joins in SQL?",
				"When would you use a LEFT JOIN versus an INNER JOIN?",
			},
			models.DifficultyMedium: {
				"When would you use a self join, and can you provide an example?",
				"How would you implement a hierarchical query using recursive CTEs?",
			},
			models.DifficultyHard: {
				"How would you optimize a query that involves multiple joins on large tables?",
				"Can you explain how you would implement a dynamic pivot in SQL?",
			},
		},
		"optimization": {
			models.DifficultyEasy: {
				"What are indexes in SQL and why are they important?",
				"How do you identify slow-performing SQL queries?",
			},
			models.DifficultyMedium: {
				"Could you explain how to optimize subqueries in SQL?",
				"What approaches would you use to optimize aggregate functions in SQL?",
			},
			models.DifficultyHard: {
				"Can you discuss strategies for optimizing complex analytical queries on large datasets?",
				"How would you approach query optimization when dealing with partitioned tables?",
			},
		},
	},
	"data_engineering": {
		"etl processes": {
			models.DifficultyEasy: {
				"What are ETL processes and why are they important in data engineering?",
				"Could you explain the difference between batch and streaming ETL?",
			},
			models.DifficultyMedium: {
				"How would you design an ETL pipeline for handling late-arriving data?",
				"What strategies would you use to monitor and ensure data quality in ETL pipelines?",
			},
			models.DifficultyHard: {
				"Could you describe how you would implement a fault-tolerant, scalable ETL system?",
				"How would you approach the migration of a legacy ETL system to a modern data architecture?",
			},
		},
		"data pipelines": {
			models.DifficultyEasy: {
				"What are the key components of a data pipeline?",
				"How do you ensure data quality in a pipeline?",
			},
			models.DifficultyMedium: {
				"Could you explain how you would implement incremental data loading in a pipeline?",
				"What approaches would you use for error handling and recovery in data pipelines?",
			},
			models.DifficultyHard: {
				"How would you design a data pipeline that requires both real-time and batch processing?",
				"Can you explain how you would implement a multi-tenant data pipeline with different SLAs?",
			},
		},
	},
	"machine_learning": {
		"feature engineering": {
			models.DifficultyEasy: {
				"What is feature engineering and why is it important in machine learning?",
				"What are some common techniques for handling categorical variables?",
			},
			models.DifficultyMedium: {
				"Can you explain different approaches to handling imbalanced data in machine learning?",
				"How would you approach feature selection for a high-dimensional dataset?",
			},
			models.DifficultyHard: {
				"How would you design a feature engineering pipeline for time series data?",
				"Could you explain techniques for automated feature engineering and when you would use them?",
			},
		},
		"model evaluation": {
			models.DifficultyEasy: {
				"What metrics would you use to evaluate a classification model versus a regression model?",
				"Can you explain the concept of cross-validation?",
			},
			models.DifficultyMedium: {
				"How do you address the issue of class imbalance when evaluating a model?",
				"What approaches would you use to detect and handle overfitting?",
			},
			models.DifficultyHard: {
				"Can you explain how you would implement a custom evaluation metric for a specific business problem?",
				"How would you approach model evaluation in an online learning setting?",
			},
		},
	},
	"cloud": {
		"aws": {
			models.DifficultyEasy: {
				"What are the main AWS services you've worked with for data processing?",
				"Could you explain the difference between S3, EBS, and EFS storage options?",
			},
			models.DifficultyMedium: {
				"How would you design a serverless data processing pipeline on AWS?",
				"What AWS services would you use for a real-time analytics system?",
			},
			models.DifficultyHard: {
				"Could you describe how you would implement a cost-optimized, multi-region data architecture on AWS?",
				"How would you approach security and compliance for a large-scale data lake on AWS?",
			},
		},
		"containers": {
			models.DifficultyEasy: {
				"What are containers and how do they differ from virtual machines?",
				"Could you explain the key components of Docker?",
			},
			models.DifficultyMedium: {
				"How would you design a containerized microservices architecture?",
				"What approaches would you use for container orchestration?",
			},
			models.DifficultyHard: {
				"Could you explain how you would implement a security-focused container strategy?",
				"How would you design a CI/CD pipeline for containerized applications?",
			},
		},
	},
}
