package mrw

// SAGEC is MRW's picking gateway. The sandbox host is used when the
// carrier config enables sandbox mode.
const (
	// ProductionBaseURL is the production SAGEC endpoint
	ProductionBaseURL = "https://sagec.mrw.es"
	// SandboxBaseURL is the test SAGEC endpoint
	SandboxBaseURL = "https://sagec-test.mrw.es"

	pathTransmEnvio = "/MRWEnvio.asmx/TransmEnvio"
	pathGetEtiqueta = "/MRWEnvio.asmx/GetEtiquetaEnvio"
)

// maxResponseSize limits response bodies to prevent memory exhaustion.
// Labels are small PDFs; anything larger is a protocol error.
const maxResponseSize = 10 * 1024 * 1024
