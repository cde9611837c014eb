package http

// ListLogs godoc
// @Summary List activity log entries
// @Description Activity log entries, newest first
// @Tags Activity
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/logs [get]
func (h *ActivityHandler) ListLogsDoc() {}

// GetMovements godoc
// @Summary Daily movement totals
// @Description Per-day inward and outward totals over a trailing window, zero-filled
// @Tags Activity
// @Produce json
// @Param days query int false "Window size in days (default: 30)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/logs/movements [get]
func (h *ActivityHandler) GetMovementsDoc() {}
