/*
Package bytechan implements a channel for reading and writing bytes on a
single underlying resource, such as a file, a socket, or a pipe.

# Channels

A *Channel owns exactly one resource handle, and delegates the mechanics of
reading and writing to a Reader and a Writer strategy supplied when the
channel is constructed:

	f, err := os.Open("input.dat")
	...
	ch, err := bytechan.New(f, strategy.Fill{}, strategy.FullWriter{}, nil)
	if err != nil {
	   log.Fatalf("New: %v", err)
	}
	defer ch.Close()

The channel itself tracks only two pieces of state: whether a read has found
the end of the stream, and whether the channel has been closed. When the
Reader reports that it read no data, the channel records the end of the
stream and Read returns io.EOF. Once set, the end-of-stream state is never
cleared:

	buf := make([]byte, 4096)
	for {
	   n, err := ch.Read(buf)
	   if err == io.EOF {
	      break // ch.HasReachedEnd() is now true
	   } else if err != nil {
	      log.Fatalf("Read: %v", err)
	   }
	   process(buf[:n])
	}

Strategies carry no state about a particular resource, so one strategy value
may be shared by many channels. The strategy package provides several; any
function with the right signature can be used via ReaderFunc and WriterFunc.

# Transfer

The Transfer method copies a range of the channel's resource directly to
another writer, bypassing the strategies. For files, this allows the runtime
to use copy_file_range or sendfile. Resources that support positioned reads
or seeking use a buffered copy, and a resource may provide its own method by
implementing Transferer.

# Stream views

The Stream method returns a *StreamView, an io.Reader over the same resource
for code that expects a sequential stream. A view is valid only while its
channel is open.

# Errors

Operations on a closed channel report ErrClosed. Failures of the underlying
resource are reported as an *OpError wrapping the cause. Every error reported
by this package can be classified with code.FromError.

A Channel is not safe for concurrent use. Each channel must be confined to a
single goroutine at a time, or protected by the caller.
*/
package bytechan
