package vehicle

import "github.com/m04kA/SMC-FleetBookingService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor
