// Package transcode decodes and encodes message bodies layer by layer, as described by
// the Content-Encoding header field value.
package transcode
