package repository

import "errors"

// ErrReportExists возвращается при повторной вставке отчёта с тем же id.
var ErrReportExists = errors.New("save report already exists")
