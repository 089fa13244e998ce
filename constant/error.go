package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidPhone
	ErrUnknownMaskKind
	ErrUnknownForm
	ErrInvalidForm
	ErrDraftNotFound
	ErrWorkspaceRequired
	ErrInvalidSubmissionStatus
	ErrSubmissionNotFound
	ErrWorkspaceForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or phone already exists",
	ErrInvalidPassword:         "password invalid",
	ErrInvalidPhone:            "phone number must have area code and 8 or 9 digits",
	ErrUnknownMaskKind:         "unknown mask kind",
	ErrUnknownForm:             "unknown form",
	ErrInvalidForm:             "form has invalid fields",
	ErrDraftNotFound:           "draft not found",
	ErrWorkspaceRequired:       "workspace is required",
	ErrInvalidSubmissionStatus: "submission is not pending",
	ErrSubmissionNotFound:      "submission not found",
	ErrWorkspaceForbidden:      "operator is not a member of this workspace",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusBadRequest,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusBadRequest,
	ErrInvalidPassword:         http.StatusBadRequest,
	ErrInvalidPhone:            http.StatusBadRequest,
	ErrUnknownMaskKind:         http.StatusBadRequest,
	ErrUnknownForm:             http.StatusNotFound,
	ErrInvalidForm:             http.StatusUnprocessableEntity,
	ErrDraftNotFound:           http.StatusNotFound,
	ErrWorkspaceRequired:       http.StatusBadRequest,
	ErrInvalidSubmissionStatus: http.StatusConflict,
	ErrSubmissionNotFound:      http.StatusNotFound,
	ErrWorkspaceForbidden:      http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrInvalidPhone:            "0007",
	ErrUnknownMaskKind:         "0008",
	ErrUnknownForm:             "0009",
	ErrInvalidForm:             "0010",
	ErrDraftNotFound:           "0011",
	ErrWorkspaceRequired:       "0012",
	ErrInvalidSubmissionStatus: "0013",
	ErrSubmissionNotFound:      "0014",
	ErrWorkspaceForbidden:      "0015",
}
