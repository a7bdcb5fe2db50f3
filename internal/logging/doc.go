// Package logging provides structured logging for the bytecodec tools.
//
// It wraps a global zap logger that is silent unless a level is requested,
// either on the command line or through BYTECODEC_LOG_LEVEL. Output goes to
// stderr so that conversion results on stdout stay pipeable.
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Besides the plain Info/Debug/Warn/Error helpers there are two
// codec-specific ones:
//
//	logging.LogConversion("HexToBytes", len(in), len(out), err)
//	logging.LogRawBytes("decoded payload", out)
//
// LogRawBytes renders at most 256 bytes and includes the CRC-8 of the full
// buffer.
package logging
