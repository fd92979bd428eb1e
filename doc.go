// Package contentcoding parses the Content-Encoding header field value into content
// coding layers. Standard codings (https://www.iana.org/assignments/http-parameters/http-parameters.xhtml#content-coding)
// are recognized as StdEncoding values, unknown ones are kept as substrings of the value
// for further processing.
//
// Layers are yielded in the decoding order, the outermost one first:
//
//	for layer := range contentcoding.Parse(" gzip, identity, custom-enc") {
//		fmt.Println(layer) // custom-enc, identity, gzip
//	}
//
// Parsing never fails. Rejecting unknown codings is up to the caller, see the codec
// and transcode packages for decoding bodies layer by layer.
package contentcoding
