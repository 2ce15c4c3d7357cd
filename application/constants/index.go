package constants

// request headers
var API_KEY_HEADER = "X-Api-Key"
var DEVICE_KEY_HEADER = "X-Device-Key"
var IDEMPOTENCY_KEY_HEADER = "Idempotency-Key"
var REQUEST_ID_HEADER = "X-Request-Id"

// keys stored on the application context by the admission gate
var AUTHENTICATED_KEY_CONTEXT = "AuthenticatedKey"
var CLIENT_IDENTITY_CONTEXT = "ClientIdentity"
var APP_CONTEXT = "AppContext"

// statement descriptor suffixes; the processor caps them at 22 characters
var STATEMENT_DESCRIPTOR_MAX_LENGTH = 22
var CONCESSIONS_DESCRIPTOR = "OHP CONCESSIONS"
var MERCH_DESCRIPTOR = "OHP MERCH"
var ART_DESCRIPTOR = "OHP ART"
var DEFAULT_DESCRIPTOR = "OHP POS"

var DESCRIPTION_PREFIX = "OHP POS"

// simulated readers are registered with this code in test mode
var SIMULATED_READER_REGISTRATION_CODE = "simulated-wpe"
var SIMULATED_READER_LABEL_PREFIX = "OHP POS Simulated"

var PROCESS_IDEMPOTENCY_PREFIX = "process-pi"
