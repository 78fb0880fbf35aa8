package rabbitmq

const JobTypeGenerateWeekly = "generate_weekly"
