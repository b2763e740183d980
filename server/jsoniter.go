// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"io"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)

	return jsoniter.Config{
		IndentionStep:                 0,
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		TagKey:                        "json",
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	message := (*Message)(ptr)

	var envelope struct {
		Type messageType         `json:"type"`
		Data jsoniter.RawMessage `json:"data"`
	}
	iter.ReadVal(&envelope)
	if iter.Error != nil {
		return
	}

	inboundType, ok := inboundMessageTypes[envelope.Type]
	if !ok {
		// Invalid message type from client (possibly out of date)
		message.Data = &InvalidInbound{messageType: envelope.Type}
		return
	}

	in := reflect.New(inboundType).Interface()
	if len(envelope.Data) > 0 {
		// Borrow from the pool instead of going through the package json
		// var, which is still initializing when this function is bound.
		pool := iter.Pool()
		sub := pool.BorrowIterator(envelope.Data)
		sub.ReadVal(in)
		err := sub.Error
		pool.ReturnIterator(sub)
		if err != nil && err != io.EOF {
			iter.Error = err
			return
		}
	}

	message.Data = in
}
