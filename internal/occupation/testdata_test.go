package occupation

// alabamaRecords is a small two-state OEWS extract used across tests.
func alabamaRecords() []Record {
	return []Record{
		{State: "Alabama", Group: GroupTotal, Code: 0, Title: "All Occupations", JobsPerThousand: 1000, TotalJobs: 100000},
		{State: "Alabama", Group: GroupMajor, Code: 110000, Title: "Management", JobsPerThousand: 40, TotalJobs: 40000},
		{State: "Alabama", Group: GroupDetailed, Code: 110000, Title: "Chief Executives", TotalJobs: 40000},
		{State: "Alabama", Group: GroupMajor, Code: 190000, Title: "Life, Physical, and Social Science Occupations", JobsPerThousand: 60, TotalJobs: 60000},
		{State: "Alabama", Group: GroupDetailed, Code: 191042, Title: "Medical Scientists", TotalJobs: 35000},
		{State: "Alabama", Group: GroupDetailed, Code: 193011, Title: "Economists", TotalJobs: 25000},
		{State: "Alaska", Group: GroupTotal, Code: 0, Title: "All Occupations", JobsPerThousand: 1000, TotalJobs: 10000},
		{State: "Alaska", Group: GroupMajor, Code: 110000, Title: "Management", JobsPerThousand: 70, TotalJobs: 7000},
		{State: "Alaska", Group: GroupDetailed, Code: 111011, Title: "Chief Executives", TotalJobs: 7000},
		{State: "Alaska", Group: GroupMajor, Code: 190000, Title: "Life, Physical, and Social Science Occupations", JobsPerThousand: 30, TotalJobs: 3000},
		{State: "Alaska", Group: GroupDetailed, Code: 191042, Title: "Medical Scientists", TotalJobs: 3000},
	}
}

func alabamaEstimates() []Estimate {
	return []Estimate{
		{Code: 110000, Probability: 0.9},
		{Code: 111011, Probability: 0.015},
		{Code: 191042, Probability: 0.2},
		{Code: 193011, Probability: 0.43},
	}
}
