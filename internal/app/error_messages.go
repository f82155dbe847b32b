// Package app contains shared application-layer constants used across the
// babynumtime server handlers and middleware.
//
// All Msg* constants are user-facing message strings written into HTTP
// response bodies to describe the outcome of an action. The wording is
// Indonesian because that is the language of the app's audience; keeping the
// strings in one place ensures every handler answers with the same phrasing.
package app

const (
	// MsgBabyIDRequired is returned when an action that operates on an
	// existing record set arrives without a babyId.
	MsgBabyIDRequired = "babyId diperlukan"

	// MsgBirthDateRequired is returned when a createBaby request omits the
	// birthDate field.
	MsgBirthDateRequired = "birthDate diperlukan"

	// MsgBabyIDAndDataRequired is returned when a syncData request omits
	// either the babyId or the data snapshot.
	MsgBabyIDAndDataRequired = "babyId dan data diperlukan"

	// MsgInvalidAction is returned when the action field names no known
	// operation.
	MsgInvalidAction = "Action tidak valid"

	// MsgBabyNotFound is returned when the supplied babyId matches no stored
	// profile.
	MsgBabyNotFound = "Baby tidak ditemukan"

	// MsgServerError is returned for any unexpected server-side failure.
	MsgServerError = "Terjadi kesalahan server"

	// MsgServerMisconfigured is returned when the server cannot reach its
	// storage backend and the caller can do nothing about it.
	MsgServerMisconfigured = "Server tidak terkonfigurasi dengan benar. Hubungi administrator."

	// MsgSyncFailed is shown by the client when pushing local records to the
	// backend fails.
	MsgSyncFailed = "Sinkronisasi gagal"

	// MsgFetchFailed is shown by the client when pulling records from the
	// backend fails.
	MsgFetchFailed = "Gagal mengambil data"
)
