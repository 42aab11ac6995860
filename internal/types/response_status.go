package types

import (
	"fmt"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Response status codes shared by HTTP and RTSP.
const (
	ResponseStatusContinue           ResponseStatus = 100
	ResponseStatusSwitchingProtocols ResponseStatus = 101

	ResponseStatusOK             ResponseStatus = 200
	ResponseStatusCreated        ResponseStatus = 201
	ResponseStatusAccepted       ResponseStatus = 202
	ResponseStatusNoContent      ResponseStatus = 204
	ResponseStatusPartialContent ResponseStatus = 206
	ResponseStatusLowOnStorage   ResponseStatus = 250 // RTSP

	ResponseStatusMultipleChoices  ResponseStatus = 300
	ResponseStatusMovedPermanently ResponseStatus = 301
	ResponseStatusFound            ResponseStatus = 302
	ResponseStatusSeeOther         ResponseStatus = 303
	ResponseStatusNotModified      ResponseStatus = 304
	ResponseStatusUseProxy         ResponseStatus = 305

	ResponseStatusBadRequest                ResponseStatus = 400
	ResponseStatusUnauthorized              ResponseStatus = 401
	ResponseStatusForbidden                 ResponseStatus = 403
	ResponseStatusNotFound                  ResponseStatus = 404
	ResponseStatusMethodNotAllowed          ResponseStatus = 405
	ResponseStatusNotAcceptable             ResponseStatus = 406
	ResponseStatusRequestTimeout            ResponseStatus = 408
	ResponseStatusGone                      ResponseStatus = 410
	ResponseStatusLengthRequired            ResponseStatus = 411
	ResponseStatusPreconditionFailed        ResponseStatus = 412
	ResponseStatusRequestEntityTooLarge     ResponseStatus = 413
	ResponseStatusUnsupportedMediaType      ResponseStatus = 415
	ResponseStatusExpectationFailed         ResponseStatus = 417
	ResponseStatusParameterNotUnderstood    ResponseStatus = 451 // RTSP
	ResponseStatusSessionNotFound           ResponseStatus = 454 // RTSP
	ResponseStatusMethodNotValidInThisState ResponseStatus = 455 // RTSP
	ResponseStatusUnsupportedTransport      ResponseStatus = 461 // RTSP
	ResponseStatusInternalServerError       ResponseStatus = 500
	ResponseStatusNotImplemented            ResponseStatus = 501
	ResponseStatusBadGateway                ResponseStatus = 502
	ResponseStatusServiceUnavailable        ResponseStatus = 503
	ResponseStatusGatewayTimeout            ResponseStatus = 504
	ResponseStatusVersionNotSupported       ResponseStatus = 505
	ResponseStatusOptionNotSupported        ResponseStatus = 551 // RTSP
)

// ResponseStatus is a three-digit response status code.
type ResponseStatus uint

func (s ResponseStatus) IsValid() bool { return s >= 100 && s < 1000 }

func (s ResponseStatus) Equal(val any) bool {
	var other ResponseStatus
	switch v := val.(type) {
	case ResponseStatus:
		other = v
	case *ResponseStatus:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return s == other
}

func (s ResponseStatus) IsInformational() bool { return s >= 100 && s < 200 }

func (s ResponseStatus) IsSuccessful() bool { return s >= 200 && s < 300 }

func (s ResponseStatus) IsRedirection() bool { return s >= 300 && s < 400 }

func (s ResponseStatus) IsClientError() bool { return s >= 400 && s < 500 }

func (s ResponseStatus) IsServerError() bool { return s >= 500 && s < 600 }

// Reason returns the standard reason phrase, or an empty reason for unknown codes.
func (s ResponseStatus) Reason() ResponseReason { return responseReasons[s] }

func (s ResponseStatus) String() string { return fmt.Sprintf("%d %s", s, s.Reason()) }

type ResponseReason string

func (ResponseReason) IsValid() bool { return true }

func (r ResponseReason) Equal(val any) bool {
	var other ResponseReason
	switch v := val.(type) {
	case ResponseReason:
		other = v
	case *ResponseReason:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(r, other)
}

var responseReasons = map[ResponseStatus]ResponseReason{
	ResponseStatusContinue:           "Continue",
	ResponseStatusSwitchingProtocols: "Switching Protocols",

	ResponseStatusOK:             "OK",
	ResponseStatusCreated:        "Created",
	ResponseStatusAccepted:       "Accepted",
	ResponseStatusNoContent:      "No Content",
	ResponseStatusPartialContent: "Partial Content",
	ResponseStatusLowOnStorage:   "Low on Storage Space",

	ResponseStatusMultipleChoices:  "Multiple Choices",
	ResponseStatusMovedPermanently: "Moved Permanently",
	ResponseStatusFound:            "Found",
	ResponseStatusSeeOther:         "See Other",
	ResponseStatusNotModified:      "Not Modified",
	ResponseStatusUseProxy:         "Use Proxy",

	ResponseStatusBadRequest:                "Bad Request",
	ResponseStatusUnauthorized:              "Unauthorized",
	ResponseStatusForbidden:                 "Forbidden",
	ResponseStatusNotFound:                  "Not Found",
	ResponseStatusMethodNotAllowed:          "Method Not Allowed",
	ResponseStatusNotAcceptable:             "Not Acceptable",
	ResponseStatusRequestTimeout:            "Request Timeout",
	ResponseStatusGone:                      "Gone",
	ResponseStatusLengthRequired:            "Length Required",
	ResponseStatusPreconditionFailed:        "Precondition Failed",
	ResponseStatusRequestEntityTooLarge:     "Request Entity Too Large",
	ResponseStatusUnsupportedMediaType:      "Unsupported Media Type",
	ResponseStatusExpectationFailed:         "Expectation Failed",
	ResponseStatusParameterNotUnderstood:    "Parameter Not Understood",
	ResponseStatusSessionNotFound:           "Session Not Found",
	ResponseStatusMethodNotValidInThisState: "Method Not Valid in This State",
	ResponseStatusUnsupportedTransport:      "Unsupported Transport",

	ResponseStatusInternalServerError: "Internal Server Error",
	ResponseStatusNotImplemented:      "Not Implemented",
	ResponseStatusBadGateway:          "Bad Gateway",
	ResponseStatusServiceUnavailable:  "Service Unavailable",
	ResponseStatusGatewayTimeout:      "Gateway Timeout",
	ResponseStatusVersionNotSupported: "Version Not Supported",
	ResponseStatusOptionNotSupported:  "Option Not Supported",
}
