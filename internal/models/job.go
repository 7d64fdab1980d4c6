package models

// Job — запись о задаче анализа в БД.
// Auth-части системы job-ы не принадлежат: jobs-сервис отдаёт их списком
// после успешной проверки токена.
type Job struct {
	JobID            int64  `json:"jobid"`
	UserID           int64  `json:"userid"`
	Status           string `json:"status"`
	OriginalDataFile string `json:"originaldatafile"`
	DataFileKey      string `json:"datafilekey"`
	ResultsFileKey   string `json:"resultsfilekey"`
}
