package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrBadGateway           = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidCredentials      = errors.New("Email or password is incorrect")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrUsernameAlreadyUsed     = errors.New("Username has already been taken")
	ErrTokenExpired            = errors.New("The token is already expired")
	ErrNotAnImage              = errors.New("Uploaded file is not an image")
	ErrDuplicateName           = errors.New("Duplicate name found")
	ErrDuplicateSlug           = errors.New("Duplicate slug found")
	ErrParentCategoryNotFound  = errors.New("Parent category not found")
	ErrRatingOutOfRange        = errors.New("Rating must be between 1 and 5")
	ErrObjectStorageWriteFault = errors.New("Failed to store image on the object storage")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrInvalidCredentials:      ErrStatusUnauthorized,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusClient,
	ErrUsernameAlreadyUsed:     ErrStatusClient,
	ErrTokenExpired:            ErrStatusUnauthorized,
	ErrNotAnImage:              ErrStatusClient,
	ErrDuplicateName:           ErrStatusConflict,
	ErrDuplicateSlug:           ErrStatusConflict,
	ErrParentCategoryNotFound:  ErrStatusClient,
	ErrRatingOutOfRange:        ErrStatusClient,
	ErrObjectStorageWriteFault: ErrBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
