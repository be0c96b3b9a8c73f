package leak

//RepositorySink buffers leak reports and inserts them into a Repository
//in batches
type RepositorySink struct {
	repo     Repository
	bulkSize int
	buffer   []*Result
	written  int
	dropped  int
}

//NewRepositorySink creates a sink inserting bulkSize reports at a time
func NewRepositorySink(repo Repository, bulkSize int) *RepositorySink {
	if bulkSize < 1 {
		bulkSize = 1
	}
	return &RepositorySink{
		repo:     repo,
		bulkSize: bulkSize,
		buffer:   make([]*Result, 0, bulkSize),
	}
}

//Write buffers a report, inserting the batch once it is full
func (s *RepositorySink) Write(result *Result) error {
	s.buffer = append(s.buffer, result)
	if len(s.buffer) >= s.bulkSize {
		return s.Flush()
	}
	return nil
}

//Flush inserts the buffered reports. The batch is dropped whether or not
//the insert succeeds, a failed batch is never sent again.
func (s *RepositorySink) Flush() error {
	if len(s.buffer) == 0 {
		return nil
	}

	batch := s.buffer
	s.buffer = make([]*Result, 0, s.bulkSize)

	err := s.repo.Insert(batch)
	if err != nil {
		s.dropped += len(batch)
		return err
	}

	s.written += len(batch)
	return nil
}

//Dropped returns the number of reports lost to failed inserts
func (s *RepositorySink) Dropped() int {
	return s.dropped
}

//Written returns the number of reports inserted so far
func (s *RepositorySink) Written() int {
	return s.written
}
