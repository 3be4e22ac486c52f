package apierrors

const (
	MsgFailListTask             = "errorListTask"
	MsgFailGetTask              = "failGetTask"
	MsgFailCreateTask           = "failCreateTask"
	MsgFailUpdateTask           = "failUpdateTask"
	MsgFailUpdateTaskRoot       = "failUpdateTaskRoot"
	MsgFailDeleteTask           = "failDeleteTask"
	MsgFailSearchTask           = "failSearchTask"
	MsgFailListLogs             = "failListLogs"
	MsgInvalidTaskID            = "invalidTaskID"
	MsgInvalidTaskPayload       = "invalidTaskPayload"
	MsgInvalidContinuationToken = "invalidContinuationToken"
	MsgInvalidTake              = "invalidTake"
	MsgInvalidPagination        = "invalidPagination"
	MsgInvalidSortField         = "invalidSortField"
	MsgInvalidSearchPhrase      = "invalidSearchPhrase"
	MsgInvalidHierarchyBinding  = "invalidHierarchyBinding"
	MsgTaskNotFound             = "taskNotFound"
)
